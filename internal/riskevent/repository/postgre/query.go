package postgre

const (
	insertRiskEventQuery = `INSERT INTO risk_events
	(id, user_id, risk_level, score, triggers, delivered, primary_ok, secondary_ok, lexicon_version, user_email, session_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	selectRiskEventsQuery = `SELECT id, user_id, risk_level, score, triggers, delivered, primary_ok, secondary_ok,
	lexicon_version, user_email, session_id, created_at FROM risk_events`
)
