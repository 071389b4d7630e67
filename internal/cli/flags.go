package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/ports/primary"
)

// commandTimeout bounds every store round trip a command makes.
const commandTimeout = 30 * time.Second

// field binds a string flag to the payload key it fills.
type field struct {
	flag  string
	key   string
	usage string
}

// addFields registers one string flag per field.
func addFields(cmd *cobra.Command, fields []field) {
	for _, f := range fields {
		cmd.Flags().String(f.flag, "", f.usage)
	}
}

// flagPayload copies every flag the user actually set into a payload.
// Unset flags are left out so updates only touch what was given.
func flagPayload(cmd *cobra.Command, fields []field) primary.Payload {
	p := primary.Payload{}
	for _, f := range fields {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		v, _ := cmd.Flags().GetString(f.flag)
		p[f.key] = v
	}
	return p
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, commandTimeout)
}
