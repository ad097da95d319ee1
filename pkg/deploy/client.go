package deploy

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/longplay45/swissgrid/pkg/errors"
)

const connectTimeout = 20 * time.Second

// Target identifies a remote host and how to authenticate against it.
type Target struct {
	Host          string
	Port          int
	User          string
	Password      string
	Key           string
	KeyPassphrase string
}

// Client is an authenticated SFTP session.
type Client struct {
	ssh  *ssh.Client
	sftp *sftp.Client
}

// Connect opens an SSH connection to the target and starts an SFTP session
// on it. Key auth is used when a key path is configured, password auth
// otherwise.
func Connect(cfg Target) (*Client, error) {
	auth, err := authMethods(cfg)
	if err != nil {
		return nil, err
	}

	sshCfg := &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         connectTimeout,
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	conn, err := ssh.Dial("tcp", addr, sshCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDeploy, "connecting to %s failed", addr)
	}

	ftp, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDeploy, "starting SFTP session failed")
	}

	return &Client{ssh: conn, sftp: ftp}, nil
}

func authMethods(cfg Target) ([]ssh.AuthMethod, error) {
	if cfg.Key == "" {
		if cfg.Password == "" {
			return nil, errors.New(errors.ErrCodeDeploy, "deploy config has neither key nor password")
		}
		return []ssh.AuthMethod{ssh.Password(cfg.Password)}, nil
	}

	data, err := os.ReadFile(cfg.Key)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDeploy, "reading SSH key %s failed", cfg.Key)
	}

	var signer ssh.Signer
	if cfg.KeyPassphrase != "" {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(data, []byte(cfg.KeyPassphrase))
	} else {
		signer, err = ssh.ParsePrivateKey(data)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDeploy, "loading SSH key %s failed", cfg.Key)
	}
	return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
}

// Close tears down the SFTP session and the SSH connection.
func (c *Client) Close() error {
	if c.sftp != nil {
		c.sftp.Close()
	}
	if c.ssh != nil {
		return c.ssh.Close()
	}
	return nil
}
