package paging

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/logging"
	"github.com/ncobase/relaypage/paging/cursor"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaginator(t *testing.T, c *config.Paging) (*Paginator, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.New(&buf)
	logger.SetLevel(logrus.DebugLevel)
	p, err := NewPaginator(context.Background(), c, logger)
	require.NoError(t, err)
	return p, &buf
}

func TestPaginatorPlain(t *testing.T) {
	p, buf := newTestPaginator(t, &config.Paging{DefaultFirst: 10, MaxFirst: 25})

	conn, err := PageSlice(context.Background(), p, numbers(100), Args{})
	require.NoError(t, err)
	assert.Equal(t, numbers(10), conn.Nodes())
	assert.Equal(t, "9", *conn.PageInfo.EndCursor)
	assert.Contains(t, buf.String(), "window [0, 10) of 100")

	conn, err = PageSlice(context.Background(), p, numbers(100), Args{Last: last(40)})
	require.NoError(t, err)
	assert.Len(t, conn.Edges, 25)

	mconn, err := PageMap(context.Background(), p, letters(), Args{After: at("c")})
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, keys(mconn))
}

func TestPaginatorEncoded(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(secret)
	p, buf := newTestPaginator(t, &config.Paging{EncodeCursor: true, Secret: encoded})
	assert.NotContains(t, buf.String(), "ephemeral")
	assert.IsType(t, &cursor.Signed[int]{}, p.SliceCodec())
	assert.IsType(t, &cursor.Sealed[string]{}, p.MapCodec())

	other, _ := newTestPaginator(t, &config.Paging{EncodeCursor: true, Secret: encoded})
	conn, err := PageSlice(context.Background(), p, numbers(5), Args{First: first(2)})
	require.NoError(t, err)
	conn, err = PageSlice(context.Background(), other, numbers(5), Args{After: conn.PageInfo.EndCursor})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, conn.Nodes())
}

func TestPaginatorEphemeralSecret(t *testing.T) {
	p, buf := newTestPaginator(t, &config.Paging{EncodeCursor: true})
	assert.Contains(t, buf.String(), "ephemeral secret")

	other, _ := newTestPaginator(t, &config.Paging{EncodeCursor: true})
	conn, err := PageSlice(context.Background(), p, numbers(5), Args{First: first(2)})
	require.NoError(t, err)
	_, err = PageSlice(context.Background(), other, numbers(5), Args{After: conn.PageInfo.EndCursor})
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestPaginatorErrorsLogged(t *testing.T) {
	p, buf := newTestPaginator(t, nil)
	_, err := PageSlice(context.Background(), p, numbers(5), Args{First: first(1), Last: last(1)})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, buf.String(), "paging.slice")

	_, err = PageMap[int](context.Background(), p, nil, Args{After: at("x")})
	assert.ErrorIs(t, err, ErrPositionNotFound)
}

func TestDecodeSecret(t *testing.T) {
	raw := bytes.Repeat([]byte{7}, cursor.SecretSize)
	got, err := DecodeSecret(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	got, err = DecodeSecret("short passphrase")
	require.NoError(t, err)
	assert.Equal(t, []byte("short passphrase"), got)

	got, err = DecodeSecret("")
	require.NoError(t, err)
	assert.Nil(t, got)
}
