// Package compiling invokes the external LaTeX toolchain to turn rendered
// source into PDF bytes. All filesystem use is confined to a per-invocation
// temporary directory that is removed on every exit path.
package compiling

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	// PassTimeout is the default maximum duration of one pdflatex pass.
	PassTimeout = 30 * time.Second

	// maxLogBytes caps the diagnostic log kept for display. The tail is
	// kept because pdflatex reports errors at the end of its output.
	maxLogBytes = 4096

	sourceFileName = "resume.tex"
)

// Result is a successful compilation: the PDF bytes and the (truncated)
// compiler log.
type Result struct {
	PDF []byte
	Log string
}

// Compile compiles LaTeX source to PDF with the default per-pass timeout.
func Compile(ctx context.Context, source string) (*Result, error) {
	return CompileWithTimeout(ctx, source, PassTimeout)
}

// CompileWithTimeout writes source into a fresh temporary directory and
// runs pdflatex over it twice; the second pass resolves icon glyph and
// hyperref cross-references. It returns the PDF bytes on success. A
// non-zero exit, a timed-out pass, or a missing output file is a failure
// carrying the captured diagnostic log.
func CompileWithTimeout(ctx context.Context, source string, perPass time.Duration) (*Result, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return nil, &Error{
			Message: "pdflatex not found in PATH; install a LaTeX distribution (e.g. TeX Live, MiKTeX)",
			Cause:   err,
		}
	}
	if perPass <= 0 {
		perPass = PassTimeout
	}

	workDir, err := os.MkdirTemp("", "resume-compile-*")
	if err != nil {
		return nil, &Error{
			Message: "failed to create temporary working directory",
			Cause:   err,
		}
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	texPath := filepath.Join(workDir, sourceFileName)
	if err := os.WriteFile(texPath, []byte(source), 0o644); err != nil {
		return nil, &Error{
			Message: "failed to write LaTeX source to working directory",
			Cause:   err,
		}
	}

	var log bytes.Buffer
	for pass := 1; pass <= 2; pass++ {
		if err := runPass(ctx, perPass, workDir, texPath, &log); err != nil {
			return nil, &Error{
				Message: fmt.Sprintf("pdflatex pass %d of 2 failed", pass),
				Log:     truncateLog(log.String()),
				Cause:   err,
			}
		}
	}

	pdfPath := filepath.Join(workDir, "resume.pdf")
	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		// pdflatex exited 0 but produced no PDF; treat as a hard failure
		// rather than assuming success.
		return nil, &Error{
			Message: "compilation produced no PDF output",
			Log:     truncateLog(log.String()),
			Cause:   err,
		}
	}

	return &Result{PDF: pdf, Log: truncateLog(log.String())}, nil
}

// runPass executes one pdflatex invocation, appending combined
// stdout/stderr to log.
func runPass(ctx context.Context, timeout time.Duration, workDir, texPath string, log *bytes.Buffer) error {
	passCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// -interaction=nonstopmode prevents interactive prompts on errors.
	cmd := exec.CommandContext(passCtx, "pdflatex",
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", workDir,
		texPath,
	)
	cmd.Stdout = log
	cmd.Stderr = log

	err := cmd.Run()
	if passCtx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("pdflatex timed out after %s", timeout)
	}
	return err
}

// truncateLog keeps the tail of the compiler log within maxLogBytes.
func truncateLog(log string) string {
	if len(log) <= maxLogBytes {
		return log
	}
	return "... (log truncated)\n" + log[len(log)-maxLogBytes:]
}
