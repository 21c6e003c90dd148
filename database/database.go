// File: /database/database.go
package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"friendlink-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.FriendRequest{},
		&models.Friendship{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// One friendship row per unordered pair
	if err := db.Exec("ALTER TABLE friendships ADD CONSTRAINT uk_friendships_pair UNIQUE (user1_id, user2_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for friendships: %v\n", err)
	}

	// No self-edges
	if err := db.Exec("ALTER TABLE friendships ADD CONSTRAINT ck_friendships_no_self CHECK (user1_id != user2_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for friendships: %v\n", err)
	}

	// No self-requests
	if err := db.Exec("ALTER TABLE friend_requests ADD CONSTRAINT ck_friend_requests_no_self CHECK (sender_id != recipient_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add check constraint for friend_requests: %v\n", err)
	}

	return nil
}

// SeedData populates the database with sample accounts for development.
// The seeded graph (alice-carol, bob-carol) makes bob show up as a
// mutual-friend recommendation for alice.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	password, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	testUsers := []models.User{
		{ID: "user-1", Username: "alice123", Firstname: "Alice", Lastname: "Anderson", Email: "alice@example.com", Password: string(password)},
		{ID: "user-2", Username: "bob_b", Firstname: "Bob", Lastname: "Brown", Email: "bob@example.com", Password: string(password)},
		{ID: "user-3", Username: "carol.c", Firstname: "Carol", Lastname: "Clark", Email: "carol@example.com", Password: string(password)},
		{ID: "user-4", Username: "dave-d", Firstname: "Dave", Lastname: "Diaz", Email: "dave@example.com", Password: string(password)},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Username, err)
		}
	}

	testFriendships := []models.Friendship{
		{User1ID: "user-1", User2ID: "user-3"},
		{User1ID: "user-2", User2ID: "user-3"},
	}

	for _, friendship := range testFriendships {
		if err := db.Create(&friendship).Error; err != nil {
			fmt.Printf("Warning: Could not create test friendship: %v\n", err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
