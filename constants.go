package grokipedia

import "context"

// GetConstants retrieves the API's configuration constants from
// /api/constants.
func (c *httpClient) GetConstants(ctx context.Context) (*ConstantsResponse, error) {
	body, err := c.transport.Get(ctx, "/api/constants", nil)
	if err != nil {
		return nil, err
	}

	return decode[ConstantsResponse](body)
}
