package bitbucket

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"

	"go.trai.ch/bbstatus/internal/core/domain"
)

// ExitCode maps a failed round trip to the curl-compatible exit code.
func ExitCode(err error) int {
	var (
		dnsErr       *net.DNSError
		verifyErr    *tls.CertificateVerificationError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		invalidErr   x509.CertificateInvalidError
		recordErr    tls.RecordHeaderError
		alertErr     tls.AlertError
		opErr        *net.OpError
		netErr       net.Error
	)

	switch {
	case errors.As(err, &dnsErr):
		return domain.ExitHostNotResolved
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ExitTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return domain.ExitTimeout
	case errors.As(err, &verifyErr), errors.As(err, &authorityErr),
		errors.As(err, &hostnameErr), errors.As(err, &invalidErr):
		return domain.ExitPeerCertInvalid
	case errors.As(err, &recordErr), errors.As(err, &alertErr):
		return domain.ExitTLSHandshake
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return domain.ExitConnectFailed
	case errors.As(err, &opErr) && opErr.Op == "remote error":
		return domain.ExitTLSHandshake
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.ExitReceiveFailed
	case errors.As(err, &opErr) && opErr.Op == "read":
		return domain.ExitReceiveFailed
	default:
		return domain.ExitTransferUnknown
	}
}
