package database

import (
	"fmt"
	"log"

	"aluno_ai_backend/internal/config"
	"aluno_ai_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Progress{},
		&model.UnlockedAchievement{},
		&model.ProfessorTurn{},
		&model.TutorMessage{},
		&model.Motivation{},
		&model.StudyPlan{},
		&model.CheckpointCompletion{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedMotivations(db)
	seedAdmin(db, &cfg.Admin)

	return db, nil
}

func seedMotivations(db *gorm.DB) {
	var count int64
	db.Model(&model.Motivation{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := []string{
		"Cada questão revisada é um passo a mais rumo à sua aprovação. Continue!",
		"Errar faz parte: o que importa é transformar cada erro em aprendizado.",
		"Estudar um pouco todos os dias vale mais do que muito de vez em quando.",
		"Você já chegou até aqui. Imagine até onde ainda pode ir!",
	}
	for i, content := range defaults {
		db.Create(&model.Motivation{
			Content:         content,
			IsEnabled:       true,
			IsCurrentlyUsed: i == 0,
		})
	}
}

// seedAdmin creates the first staff account on an empty users table so the
// admin endpoints are reachable after a fresh deploy.
func seedAdmin(db *gorm.DB, cfg *config.AdminConfig) {
	if cfg.Email == "" || cfg.Password == "" {
		return
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	name := cfg.Name
	if name == "" {
		name = "Administrator"
	}

	db.Create(&model.User{
		Name:     name,
		Email:    cfg.Email,
		Password: string(hash),
		Role:     model.RoleAdmin,
	})
	log.Printf("Seeded admin account %s", cfg.Email)
}
