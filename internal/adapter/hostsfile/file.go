// Package hostsfile reads and writes the operating system hosts file. The
// editor owns only the block between StartMarker and EndMarker; everything
// outside it is preserved byte for byte apart from line endings.
package hostsfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/minihosts/internal/adapter/filestore"
	"github.com/heartmarshall/minihosts/internal/domain"
)

const (
	StartMarker = "#  --- MINI_HOSTS_START ---"
	EndMarker   = "#  --- MINI_HOSTS_END ---"

	backupSuffix = ".minihosts.bak"
)

// File is the hosts file at a fixed path.
type File struct {
	path string
	log  *slog.Logger
}

// New creates a File for the hosts file at path.
func New(path string, log *slog.Logger) *File {
	return &File{
		path: path,
		log:  log.With("adapter", "hostsfile"),
	}
}

// Path returns the hosts file location.
func (f *File) Path() string {
	return f.path
}

// UpdateTime returns the modification time of the hosts file in Unix seconds.
func (f *File) UpdateTime(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	info, err := os.Stat(f.path)
	if err != nil {
		return 0, filestore.MapError(err, f.path)
	}
	return info.ModTime().Unix(), nil
}

// Read returns the whole hosts file.
func (f *File) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", filestore.MapError(err, f.path)
	}
	return string(data), nil
}

// Write replaces the whole hosts file. The previous content is copied to a
// backup file first; a failed backup is logged and does not stop the write.
// The file is rewritten in place so its owner and mode survive.
func (f *File) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := f.backup(); err != nil {
		f.log.WarnContext(ctx, "hosts backup failed",
			slog.String("path", f.path),
			slog.String("error", err.Error()),
		)
	}

	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return filestore.MapError(fmt.Errorf("open for write (elevated privileges may be required): %w", err), f.path)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return filestore.MapError(err, f.path)
	}
	if err := file.Sync(); err != nil {
		return filestore.MapError(err, f.path)
	}
	return nil
}

// Section returns the body of the managed block, "" if there is none.
func (f *File) Section(ctx context.Context) (string, error) {
	content, err := f.readOrEmpty(ctx)
	if err != nil {
		return "", err
	}

	lines, _ := splitLines(content)
	var body []string
	inBlock := false
	for _, line := range lines {
		switch {
		case isMarker(line, StartMarker):
			inBlock = true
		case isMarker(line, EndMarker):
			inBlock = false
		case inBlock:
			body = append(body, line)
		}
	}
	return strings.Join(body, "\n"), nil
}

// ApplySection replaces the managed block with body. A blank body removes the
// block altogether. Marker lines inside body are dropped so the block always
// ends at the EndMarker written here.
func (f *File) ApplySection(ctx context.Context, body string) error {
	content, err := f.readOrEmpty(ctx)
	if err != nil {
		return err
	}

	lines, newline := splitLines(content)
	lines = removeBlock(lines)

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if strings.TrimSpace(body) != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, StartMarker)
		bodyLines, _ := splitLines(body)
		for _, line := range bodyLines {
			if isMarker(line, StartMarker) || isMarker(line, EndMarker) {
				f.log.WarnContext(ctx, "marker line dropped from section body", slog.String("line", line))
				continue
			}
			lines = append(lines, line)
		}
		lines = append(lines, EndMarker)
	}

	out := strings.Join(lines, newline)
	if len(lines) > 0 {
		out += newline
	}
	return f.Write(ctx, out)
}

func (f *File) readOrEmpty(ctx context.Context) (string, error) {
	content, err := f.Read(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return content, nil
}

func (f *File) backup() error {
	src, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(f.path+backupSuffix, src, 0o644)
}

// splitLines splits content into lines without their terminators and reports
// the newline sequence in use ("\r\n" if the content has any, "\n" otherwise).
func splitLines(content string) ([]string, string) {
	newline := "\n"
	if strings.Contains(content, "\r\n") {
		newline = "\r\n"
	}

	content = strings.TrimRight(content, "\r\n")
	if content == "" {
		return nil, newline
	}

	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, newline
}

func removeBlock(lines []string) []string {
	result := make([]string, 0, len(lines))
	inBlock := false
	for _, line := range lines {
		if isMarker(line, StartMarker) {
			inBlock = true
			continue
		}
		if isMarker(line, EndMarker) {
			inBlock = false
			continue
		}
		if !inBlock {
			result = append(result, line)
		}
	}
	return result
}

func isMarker(line, marker string) bool {
	return strings.TrimSpace(line) == strings.TrimSpace(marker)
}
