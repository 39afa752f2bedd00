package feedbackRepository

const (
	queryCreateFeedback = `
INSERT INTO feedback (id, user_id, message, created_at)
VALUES (:id, :user_id, :message, :created_at)`

	queryGetAllFeedback = `
SELECT id, user_id, message, created_at
FROM feedback
ORDER BY created_at DESC`

	queryGetFeedbackByUserID = `
SELECT id, user_id, message, created_at
FROM feedback
    WHERE user_id = :user_id
ORDER BY created_at DESC`
)
