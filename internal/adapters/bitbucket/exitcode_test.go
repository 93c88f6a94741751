package bitbucket_test

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bbstatus/internal/adapters/bitbucket"
	"go.trai.ch/bbstatus/internal/core/domain"
)

type timeoutError struct{}

func (timeoutError) Error() string { return "i/o timeout" }
func (timeoutError) Timeout() bool { return true }
func (timeoutError) Temporary() bool { return true }

func wrapURL(err error) error {
	return &url.Error{Op: "Post", URL: "https://bitbucket.example.com", Err: err}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "dns",
			err:  wrapURL(&net.OpError{Op: "dial", Err: &net.DNSError{Err: "no such host", Name: "bitbucket.invalid"}}),
			want: domain.ExitHostNotResolved,
		},
		{
			name: "connection refused",
			err:  wrapURL(&net.OpError{Op: "dial", Err: errors.New("connection refused")}),
			want: domain.ExitConnectFailed,
		},
		{name: "deadline", err: wrapURL(context.DeadlineExceeded), want: domain.ExitTimeout},
		{name: "net timeout", err: wrapURL(&net.OpError{Op: "read", Err: timeoutError{}}), want: domain.ExitTimeout},
		{name: "unknown authority", err: wrapURL(x509.UnknownAuthorityError{}), want: domain.ExitPeerCertInvalid},
		{name: "tls record", err: wrapURL(tls.RecordHeaderError{Msg: "first record does not look like a TLS handshake"}), want: domain.ExitTLSHandshake},
		{name: "tls alert", err: wrapURL(&net.OpError{Op: "remote error", Err: tls.AlertError(40)}), want: domain.ExitTLSHandshake},
		{name: "eof", err: wrapURL(io.EOF), want: domain.ExitReceiveFailed},
		{name: "read reset", err: wrapURL(&net.OpError{Op: "read", Err: errors.New("connection reset by peer")}), want: domain.ExitReceiveFailed},
		{name: "other", err: errors.New("boom"), want: domain.ExitTransferUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bitbucket.ExitCode(tt.err))
		})
	}
}
