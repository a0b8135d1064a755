package db

const tokenColumns = `fcm_token, device_id, user_id, notification_consent_status, last_updated_at`

const tokenUpsertQ = `
INSERT INTO device_tokens (fcm_token, device_id, user_id, notification_consent_status, last_updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (fcm_token) DO UPDATE
SET device_id = COALESCE(NULLIF(EXCLUDED.device_id, ''), device_tokens.device_id),
	user_id = COALESCE(NULLIF(EXCLUDED.user_id, ''), device_tokens.user_id),
	notification_consent_status = COALESCE(
		NULLIF(EXCLUDED.notification_consent_status, ''),
		device_tokens.notification_consent_status
	),
	last_updated_at = EXCLUDED.last_updated_at
RETURNING ` + tokenColumns + `, (xmax = 0) AS inserted
`

const tokenGetByFCMQ = `
SELECT ` + tokenColumns + `
FROM device_tokens
WHERE fcm_token = $1
`

const tokenGetByDeviceQ = `
SELECT ` + tokenColumns + `
FROM device_tokens
WHERE device_id = $1
ORDER BY created_at
LIMIT 1
`

const tokenListByUserConsentQ = `
SELECT ` + tokenColumns + `
FROM device_tokens
WHERE user_id = $1 AND notification_consent_status = $2
ORDER BY created_at
`

const tokenDeleteByDeviceQ = `
DELETE FROM device_tokens
WHERE fcm_token = (
	SELECT fcm_token
	FROM device_tokens
	WHERE device_id = $1
	ORDER BY created_at
	LIMIT 1
)
RETURNING ` + tokenColumns + `
`

const tokenCountQ = `SELECT COUNT(*) FROM device_tokens`

const tokenListQ = `
SELECT ` + tokenColumns + `
FROM device_tokens
ORDER BY created_at
`
