package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Request lookups by either endpoint and by status
		{"requests", "idx_requests_sender_id", "sender_id"},
		{"requests", "idx_requests_receiver_id", "receiver_id"},
		{"requests", "idx_requests_status", "status"},

		// Conversation queries scan both directions
		{"messages", "idx_messages_sender_receiver", "sender_id, receiver_id"},
		{"messages", "idx_messages_receiver_read", "receiver_id, `read`"},
		{"messages", "idx_messages_created_at", "created_at"},

		// Skill search and reverse lookups
		{"skills", "idx_skills_name", "name"},
		{"user_skills", "idx_user_skills_skill_id", "skill_id"},

		// Ratings received by a user
		{"user_ratings", "idx_user_ratings_rated_id", "rated_id"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
