// Package bitbucket posts commit build statuses to a Bitbucket Server instance.
package bitbucket

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/klauspost/compress/gzip"
	"go.trai.ch/bbstatus/internal/core/domain"
	"go.trai.ch/zerr"
)

const keepAlive = 30 * time.Second

// Option is a functional option for configuring the Sender.
type Option func(*Sender)

// WithRootCAs sets the certificate pool used to verify the server.
// The system pool is used when unset.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(s *Sender) {
		s.rootCAs = pool
	}
}

// WithTransport sets the factory for the base transport. Each Send gets a fresh transport.
func WithTransport(newTransport func() *http.Transport) Option {
	return func(s *Sender) {
		s.newTransport = newTransport
	}
}

// Sender implements ports.StatusSender over HTTPS.
type Sender struct {
	rootCAs      *x509.CertPool
	newTransport func() *http.Transport
}

// New creates a Sender with optional configuration.
func New(opts ...Option) *Sender {
	s := &Sender{
		newTransport: cleanhttp.DefaultTransport,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send posts req to its commit endpoint and dumps the raw response to out.
// The status code is not inspected. Redirects are not followed.
func (s *Sender) Send(ctx context.Context, req domain.BuildStatusRequest, auth domain.AuthMethod, out io.Writer) error {
	body, err := json.Marshal(req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRequestBuild.Error())
	}

	client, err := s.client(auth)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRequestBuild.Error()), "endpoint", req.Endpoint())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept-Encoding", "gzip")
	if basic, ok := auth.(domain.BasicAuth); ok {
		httpReq.SetBasicAuth(basic.Username, basic.Password)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return &domain.TransferError{Code: ExitCode(err), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	dump, err := dumpResponse(resp)
	if err != nil {
		return &domain.TransferError{Code: domain.ExitReceiveFailed, Err: err}
	}
	if _, err := out.Write(dump); err != nil {
		return zerr.Wrap(err, "failed to write response")
	}
	return nil
}

// dumpResponse renders the response with the headers the server sent.
// A gzip body is decoded for display; Content-Encoding and Content-Length stay as received.
func dumpResponse(resp *http.Response) ([]byte, error) {
	if !strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return httputil.DumpResponse(resp, true)
	}

	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "%s %s\r\n", resp.Proto, resp.Status)
	if len(resp.TransferEncoding) > 0 {
		_, _ = fmt.Fprintf(&buf, "Transfer-Encoding: %s\r\n", strings.Join(resp.TransferEncoding, ", "))
	}
	if err := resp.Header.Write(&buf); err != nil {
		return nil, err
	}
	buf.WriteString("\r\n")

	zr, err := gzip.NewReader(resp.Body)
	if errors.Is(err, io.EOF) {
		return buf.Bytes(), nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = zr.Close() }()

	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Sender) client(auth domain.AuthMethod) (*http.Client, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    s.rootCAs,
	}

	if cert, ok := auth.(domain.CertAuth); ok {
		pair, err := tls.LoadX509KeyPair(cert.CertPath, cert.KeyPath)
		if err != nil {
			return nil, &domain.TransferError{
				Code: domain.ExitClientCertProblem,
				Err:  zerr.With(zerr.Wrap(err, domain.ErrClientCertLoad.Error()), "cert", cert.CertPath),
			}
		}
		tlsConfig.Certificates = []tls.Certificate{pair}
	}

	transport := s.newTransport()
	transport.TLSClientConfig = tlsConfig
	// Compression is negotiated by Send so the original headers survive.
	transport.DisableCompression = true
	// No client-side timeouts: the transfer ends when it completes or ctx is cancelled.
	transport.TLSHandshakeTimeout = 0
	transport.ResponseHeaderTimeout = 0
	transport.DialContext = (&net.Dialer{KeepAlive: keepAlive}).DialContext

	return &http.Client{
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}, nil
}
