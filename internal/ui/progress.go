package ui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"github.com/dosanma1/sysgen/internal/serializer"
)

// HelperProgress returns a serializer progress callback that draws a bar on
// w. The bar is created lazily once the total is known. Drawing failures
// are logged at debug level and never fail the write.
func HelperProgress(w io.Writer, logger *log.Logger) serializer.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(done, total int, name string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Writing helpers"),
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		bar.Describe("Writing " + name)
		if err := bar.Set(done); err != nil {
			logger.Debug("progress bar not updated", "helper", name, "error", err)
		}
	}
}
