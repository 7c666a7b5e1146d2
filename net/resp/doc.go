// Package resp writes the JSON bodies of the HTTP server.
//
// Successful responses carry the payload as is:
//
//	resp.Success(c.Writer, conn)
//
// Failures carry a business code from ecode, a message and the request
// trace id:
//
//	{
//	  "code": -1101,
//	  "message": "after: Invalid cursor: signature mismatch",
//	  "traceId": "5f0c..."
//	}
//
// Fail picks the HTTP status with ecode.ToHTTPStatus, so pagination errors
// map to 400 or 404 and anything uncoded to 500.
package resp
