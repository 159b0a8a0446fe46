package careapi

import "context"

// EndSession clears the stored credentials and cached user, then invokes the
// session-end hook so the application can drop its in-memory user state and
// send the user back to login. Idempotent: ending an already-ended session
// produces the same empty state without error.
func (c *Client) EndSession(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear session store")
	}

	c.logger.Info().Msg("Session ended")

	if c.onSessionEnd != nil {
		c.onSessionEnd()
	}
}
