package grokipedia

import "context"

// GetStats retrieves aggregate corpus statistics from /api/stats.
func (c *httpClient) GetStats(ctx context.Context) (*StatsResponse, error) {
	body, err := c.transport.Get(ctx, "/api/stats", nil)
	if err != nil {
		return nil, err
	}

	return decode[StatsResponse](body)
}
