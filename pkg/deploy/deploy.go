package deploy

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/charmbracelet/log"

	"github.com/longplay45/swissgrid/pkg/errors"
	"github.com/longplay45/swissgrid/pkg/observability"
)

// Deployer runs the wipe-and-upload cycle against one remote target.
type Deployer struct {
	client   *Client
	log      *log.Logger
	dryRun   bool
	excludes []string
}

// Option configures a [Deployer].
type Option func(*Deployer)

// WithLogger sets the logger for per-action progress output.
func WithLogger(l *log.Logger) Option {
	return func(d *Deployer) { d.log = l }
}

// WithDryRun logs every planned action without touching the remote side.
func WithDryRun() Option {
	return func(d *Deployer) { d.dryRun = true }
}

// WithExcludes appends patterns to [DefaultExcludes].
func WithExcludes(patterns ...string) Option {
	return func(d *Deployer) { d.excludes = append(d.excludes, patterns...) }
}

// New builds a deployer on an open client.
func New(c *Client, opts ...Option) *Deployer {
	d := &Deployer{
		client:   c,
		log:      log.New(io.Discard),
		excludes: append([]string(nil), DefaultExcludes...),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run wipes the remote target's contents and uploads the local tree in its
// place.
func (d *Deployer) Run(local, remote string) (err error) {
	start := time.Now()
	files := 0
	defer func() {
		observability.Deploy().OnDeployComplete(remote, files, time.Since(start), err)
	}()

	if err = d.Wipe(remote); err != nil {
		return err
	}
	files, err = d.upload(local, remote)
	return err
}

// Wipe deletes everything inside remote, keeping the directory itself.
// The filesystem root is refused outright.
func (d *Deployer) Wipe(remote string) error {
	normalized := path.Clean("/" + remote)
	if normalized == "/" {
		return errors.New(errors.ErrCodeDeploy, "refusing to wipe the remote filesystem root")
	}

	if _, err := d.client.sftp.Stat(normalized); err != nil {
		return errors.Wrap(err, errors.ErrCodeDeploy, "remote directory %s is not accessible", normalized)
	}
	return d.wipeContents(normalized)
}

func (d *Deployer) wipeContents(dir string) error {
	infos, err := d.client.sftp.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDeploy, "listing %s failed", dir)
	}

	for _, info := range infos {
		full := path.Join(dir, info.Name())
		if info.IsDir() {
			if err := d.wipeContents(full); err != nil {
				return err
			}
			d.log.Info("rmdir", "path", full, "dry-run", d.dryRun)
			if d.dryRun {
				continue
			}
			if err := d.client.sftp.RemoveDirectory(full); err != nil {
				return errors.Wrap(err, errors.ErrCodeDeploy, "removing %s failed", full)
			}
			continue
		}

		d.log.Info("rm", "path", full, "dry-run", d.dryRun)
		if d.dryRun {
			continue
		}
		if err := d.client.sftp.Remove(full); err != nil {
			return errors.Wrap(err, errors.ErrCodeDeploy, "removing %s failed", full)
		}
		observability.Deploy().OnWipe(full)
	}
	return nil
}

// Upload mirrors the local tree into remote, creating directories as
// needed and skipping excluded paths.
func (d *Deployer) Upload(local, remote string) error {
	_, err := d.upload(local, remote)
	return err
}

func (d *Deployer) upload(local, remote string) (int, error) {
	entries, err := WalkLocal(local, d.excludes)
	if err != nil {
		return 0, err
	}

	if err := d.ensureDir(remote); err != nil {
		return 0, err
	}

	for _, e := range entries {
		target := path.Join(remote, e.Rel)
		if e.IsDir {
			if err := d.ensureDir(target); err != nil {
				return 0, err
			}
			continue
		}
		if err := d.putFile(e.Abs, target); err != nil {
			return 0, err
		}
	}

	files := countFiles(entries)
	d.log.Info("deploy complete", "files", files, "remote", remote)
	return files, nil
}

func (d *Deployer) ensureDir(dir string) error {
	d.log.Info("mkdir", "path", dir, "dry-run", d.dryRun)
	if d.dryRun {
		return nil
	}
	if err := d.client.sftp.MkdirAll(dir); err != nil {
		return errors.Wrap(err, errors.ErrCodeDeploy, "creating remote directory %s failed", dir)
	}
	return nil
}

func (d *Deployer) putFile(local, remote string) error {
	d.log.Info("put", "local", local, "remote", remote, "dry-run", d.dryRun)
	if d.dryRun {
		return nil
	}

	src, err := os.Open(local)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDeploy, "opening %s failed", local)
	}
	defer src.Close()

	dst, err := d.client.sftp.Create(remote)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDeploy, "creating remote file %s failed", remote)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(err, errors.ErrCodeDeploy, "uploading %s failed", remote)
	}
	observability.Deploy().OnUpload(local, remote)
	return nil
}

func countFiles(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if !e.IsDir {
			n++
		}
	}
	return n
}
