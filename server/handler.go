package server

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/relaypage/net/resp"
	"github.com/ncobase/relaypage/paging"
	"github.com/ncobase/relaypage/version"
)

func (s *Server) health(c *gin.Context) {
	resp.Success(c.Writer, map[string]string{"status": "healthy"})
}

func (s *Server) version(c *gin.Context) {
	resp.Success(c.Writer, version.GetVersionInfo())
}

// items handles GET /items?first=&last=&after=&before=
func (s *Server) items(c *gin.Context) {
	ctx := c.Request.Context()

	var args paging.Args
	if err := c.ShouldBindQuery(&args); err != nil {
		resp.Invalid(ctx, c.Writer, err.Error())
		return
	}

	d, err := s.source.Get(ctx)
	if err != nil {
		s.logger.Errorf(ctx, "failed to load dataset: %v", err)
		resp.Fail(ctx, c.Writer, err)
		return
	}

	conn, err := d.Page(ctx, s.paginator, args)
	if err != nil {
		resp.Fail(ctx, c.Writer, err)
		return
	}
	resp.Success(c.Writer, conn)
}
