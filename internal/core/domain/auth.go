package domain

// AuthKind discriminates the AuthMethod variants.
type AuthKind uint8

const (
	// AuthBasic is HTTP Basic authentication.
	AuthBasic AuthKind = iota
	// AuthCert is TLS client certificate authentication.
	AuthCert
)

// String implements fmt.Stringer.
func (k AuthKind) String() string {
	switch k {
	case AuthBasic:
		return "basic"
	case AuthCert:
		return "client-certificate"
	default:
		return "unknown"
	}
}

// AuthMethod is the credential attached to the status request.
// The only implementations are BasicAuth and CertAuth.
type AuthMethod interface {
	Kind() AuthKind
	isAuthMethod()
}

// BasicAuth authenticates with a username and password.
type BasicAuth struct {
	Username string
	Password string
}

// Kind implements AuthMethod.
func (BasicAuth) Kind() AuthKind { return AuthBasic }

func (BasicAuth) isAuthMethod() {}

// CertAuth authenticates with a PEM certificate and private key on disk.
type CertAuth struct {
	CertPath string
	KeyPath  string
}

// Kind implements AuthMethod.
func (CertAuth) Kind() AuthKind { return AuthCert }

func (CertAuth) isAuthMethod() {}
