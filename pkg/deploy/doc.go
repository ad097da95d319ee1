// Package deploy publishes generated grid assets to a web host over SFTP.
//
// A deploy run wipes the contents of the remote target directory and
// uploads the local asset tree in its place, skipping anything matched by
// the exclude patterns. Dry-run mode walks the full plan and logs every
// action without touching the remote side.
package deploy
