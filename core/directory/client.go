package directory

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"dirsync/core/apperr"

	"github.com/go-ldap/ldap/v3"
	"go.uber.org/zap"
)

const systemName = "directory"

// Conn is the subset of *ldap.Conn used by the client.
type Conn interface {
	Bind(username, password string) error
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
	SearchWithPaging(req *ldap.SearchRequest, pagingSize uint32) (*ldap.SearchResult, error)
	Unbind() error
}

// Dialer opens a raw connection for cfg.
type Dialer func(cfg Config) (Conn, error)

// Member is one directory entry. Attributes maps each attribute name to all
// of its values, as directory attributes are multi-valued.
type Member struct {
	DN         string
	Attributes map[string][]string
}

// Client is a bound directory session scoped to one organizational unit.
type Client struct {
	conn   Conn
	cfg    Config
	logger *zap.Logger
}

// Connect dials the configured server over TLS and binds as
// CN=<account>,<base OU>.
func Connect(cfg Config, l *zap.Logger) (*Client, error) {
	return ConnectWith(cfg, l, DialTLS)
}

// ConnectWith is Connect with an explicit dialer.
func ConnectWith(cfg Config, l *zap.Logger, dial Dialer) (*Client, error) {
	if l == nil {
		l = zap.NewNop()
	}
	if cfg.BaseOU == "" {
		cfg.BaseOU = DefaultBaseOU
	}
	if cfg.Filter == "" {
		cfg.Filter = DefaultFilter
	}

	if cfg.InsecureSkipVerify {
		l.Warn("Certificate validation disabled for directory connection", zap.String("server", cfg.Server))
	}

	conn, err := dial(cfg)
	if err != nil {
		return nil, &apperr.ServiceUnavailableError{System: systemName, Err: err}
	}

	bindDN := BindDN(cfg.Account, cfg.BaseOU)
	if err := conn.Bind(bindDN, cfg.Password); err != nil {
		_ = conn.Unbind()
		return nil, classifyBindError(err)
	}

	l.Debug("Bound to directory", zap.String("server", cfg.Server), zap.String("bind_dn", bindDN))

	return &Client{conn: conn, cfg: cfg, logger: l}, nil
}

// DialTLS opens an ldaps connection honouring cfg.InsecureSkipVerify.
func DialTLS(cfg Config) (Conn, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	conn, err := ldap.DialURL(cfg.Server, ldap.DialWithTLSConfig(tlsConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.Server, err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	conn.SetTimeout(time.Duration(timeout) * time.Second)

	return conn, nil
}

// BindDN builds the distinguished name used to bind.
func BindDN(account, baseOU string) string {
	return fmt.Sprintf("CN=%s,%s", account, baseOU)
}

// BaseOU returns the organizational unit this client searches by default.
func (c *Client) BaseOU() string {
	return c.cfg.BaseOU
}

// ListMembers returns every entry one level below dn, or below the configured
// base OU when dn is empty.
func (c *Client) ListMembers(ctx context.Context, dn string) ([]Member, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("directory session is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dn == "" {
		dn = c.cfg.BaseOU
	}

	req := ldap.NewSearchRequest(
		dn,
		ldap.ScopeSingleLevel,
		ldap.NeverDerefAliases,
		0, 0, false,
		c.cfg.Filter,
		nil, // all user attributes
		nil,
	)

	var (
		result *ldap.SearchResult
		err    error
	)
	if c.cfg.PageSize > 0 {
		result, err = c.conn.SearchWithPaging(req, uint32(c.cfg.PageSize))
	} else {
		result, err = c.conn.Search(req)
	}
	if err != nil {
		if ldap.IsErrorWithCode(err, ldap.ErrorNetwork) {
			return nil, &apperr.ServiceUnavailableError{System: systemName, Err: err}
		}
		return nil, fmt.Errorf("failed to search %s: %w", dn, err)
	}

	members := make([]Member, 0, len(result.Entries))
	for _, entry := range result.Entries {
		members = append(members, toMember(entry))
	}

	c.logger.Debug("Listed directory members", zap.String("dn", dn), zap.Int("count", len(members)))

	return members, nil
}

// Close releases the session. It is safe to call more than once.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Unbind()
	c.conn = nil
	return err
}

func toMember(entry *ldap.Entry) Member {
	attrs := make(map[string][]string, len(entry.Attributes))
	for _, attr := range entry.Attributes {
		attrs[attr.Name] = attr.Values
	}
	return Member{DN: entry.DN, Attributes: attrs}
}

func classifyBindError(err error) error {
	switch {
	case ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials):
		return &apperr.AuthenticationError{System: systemName, Err: err}
	case ldap.IsErrorWithCode(err, ldap.ErrorNetwork):
		return &apperr.ServiceUnavailableError{System: systemName, Err: err}
	default:
		return fmt.Errorf("failed to bind to directory: %w", err)
	}
}
