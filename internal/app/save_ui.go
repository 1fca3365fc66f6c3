package app

import "errors"

// ErrNoFilePath is returned when saving a document that was never bound to
// a file.
var ErrNoFilePath = errors.New("no file path")

// Save writes the document to FilePath and clears the dirty flag.
func (r *Runner) Save() error {
	if r.FilePath == "" {
		r.logger().Event("save.error", map[string]any{"error": ErrNoFilePath.Error()})
		return ErrNoFilePath
	}
	buf := r.Editor.Buffer()
	if err := buf.SaveFile(r.FilePath); err != nil {
		r.logger().Event("save.error", map[string]any{"file": r.FilePath, "error": err.Error()})
		return err
	}
	r.Editor.MarkClean()
	r.logger().Event("save.success", map[string]any{"file": r.FilePath, "lines": buf.LineCount()})
	return nil
}
