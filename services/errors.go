package services

import (
	"errors"
	"vigia/client"
	"vigia/utils"
)

// wrapUpstream converts a fleet client failure into a ServiceError,
// preserving the upstream status code and message so controllers can
// relay them unchanged.
func wrapUpstream(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return utils.NewUpstreamError(apiErr.Message, apiErr.StatusCode, err)
	}
	return utils.NewServiceErrorWithCause(utils.ErrCodeInternal, err.Error(), err)
}
