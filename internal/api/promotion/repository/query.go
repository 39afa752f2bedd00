package promotionRepository

const (
	queryCreatePromotion = `
INSERT INTO promotions (id, title, discount_percent, status, created_at, updated_at)
VALUES (:id, :title, :discount_percent, :status, :created_at, :updated_at)`

	queryGetPromotionByID = `
SELECT id, title, discount_percent, status, created_at, updated_at
FROM promotions
    WHERE id = :id`

	queryGetAllPromotions = `
SELECT id, title, discount_percent, status, created_at, updated_at
FROM promotions
ORDER BY created_at DESC`

	queryGetActivePromotion = `
SELECT id, title, discount_percent, status, created_at, updated_at
FROM promotions
    WHERE status = 'Active'
ORDER BY created_at DESC
LIMIT 1`

	queryUpdatePromotion = `
UPDATE promotions
SET title = :title,
    discount_percent = :discount_percent,
    status = :status,
    updated_at = :updated_at
WHERE id = :id`

	queryDeletePromotion = `
DELETE FROM promotions
    WHERE id = :id`
)
