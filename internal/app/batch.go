package app

import (
	"github.com/example/farmhand/internal/core/farmerr"
	"github.com/example/farmhand/internal/ports/secondary"
)

// unwrapBatch extracts the single record of a batch-of-one write. A failed
// call becomes a StoreError; a failed record becomes a ValidationError
// carrying the store's field messages, unless the record no longer exists.
func unwrapBatch(op string, resp *secondary.BatchResponse, err error) (secondary.Record, error) {
	if err != nil {
		return nil, farmerr.Store(op, "", err)
	}
	if resp == nil || !resp.Success {
		msg := ""
		if resp != nil {
			msg = resp.Message
		}
		return nil, farmerr.Store(op, msg, nil)
	}
	if len(resp.Results) == 0 {
		return nil, farmerr.Store(op, "store returned no result for the record", nil)
	}

	result := resp.Results[0]
	if !result.Success && result.NotFound {
		return nil, farmerr.Gone(op, result.Message)
	}
	if !result.Success {
		fields := make([]farmerr.FieldError, len(result.Errors))
		for i, fe := range result.Errors {
			fields[i] = farmerr.FieldError{Field: fe.FieldLabel, Message: fe.Message}
		}
		msg := result.Message
		if msg == "" {
			msg = "record rejected by store"
		}
		return nil, farmerr.Validation(op, msg, fields...)
	}
	return result.Data, nil
}
