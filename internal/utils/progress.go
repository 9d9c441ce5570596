package utils

import "github.com/schollz/progressbar/v3"

// Standard progress bar descriptions
const (
	DescScanning = "Scanning"
	DescHashing  = "Hashing"
	DescWriting  = "Writing"
)

// NewProgressBar creates a consistently styled progress bar.
//
// Use total = -1 for unknown totals (spinner mode); known totals show the
// count and iterations/second.
//
// Example:
//
//	bar := utils.NewProgressBar(len(files), utils.DescHashing)
//	defer bar.Finish()
//
//	for _, f := range files {
//	    // Process file
//	    bar.Add(1)
//	}
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		// Unknown total: use spinner mode
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
