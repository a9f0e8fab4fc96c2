package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/auth"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/project"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/controller/setting"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

const sampleGithub = "https://github.com/jimcaale"

// sampleProjects are stored by Seed into an empty projects table.
var sampleProjects = []project.Fields{ //nolint:gochecknoglobals
	{
		Title: "AI Crypto Trading Bot (MLTraderPro)",
		Description: "Advanced cryptocurrency trading bot powered by machine learning algorithms for market " +
			"prediction and automated trading with comprehensive risk management features.",
		TechStack:  models.ParseTechStack("Python, TensorFlow, scikit-learn, Binance API, pandas, NumPy"),
		GithubURL:  sampleGithub,
		OrderIndex: 6,
		IsFeatured: true,
	},
	{
		Title: "Baxnaano Vet Management System",
		Description: "Comprehensive offline/online veterinary clinic management application built for " +
			"Arabsiyo-based clinic. Features appointment scheduling, patient records, and inventory management.",
		TechStack:  models.ParseTechStack("React, Node.js, Express, MongoDB, PWA"),
		GithubURL:  sampleGithub,
		OrderIndex: 5,
		IsFeatured: true,
	},
	{
		Title: "Sombuilder School Platform",
		Description: "Custom e-learning platform designed for students with class-based file storage, " +
			"assignment management, and real-time collaboration tools.",
		TechStack:  models.ParseTechStack("React, Node.js, PostgreSQL, Socket.io, AWS S3"),
		GithubURL:  sampleGithub,
		OrderIndex: 4,
		IsFeatured: true,
	},
	{
		Title: "AI Customer Support Agent",
		Description: "Intelligent chatbot system designed for local businesses to automate customer support " +
			"with natural language processing and context-aware responses.",
		TechStack:  models.ParseTechStack("Python, Natural Language Processing, Flask, React, OpenAI API"),
		GithubURL:  sampleGithub,
		OrderIndex: 3,
		IsFeatured: false,
	},
}

// SeedAdmin creates the configured admin account when no user exists yet.
// It reports whether an account was created.
func SeedAdmin(cfg *config.Config, db *gorm.DB) (bool, error) {
	if cfg.Seed.AdminUsername == "" || cfg.Seed.AdminPassword == "" {
		return false, ErrSeedCredentials
	}

	provider := auth.NewLocalProvider(db)

	count, err := provider.CountUsers()
	if err != nil {
		return false, err
	}

	if count > 0 {
		return false, nil
	}

	if _, err = provider.CreateUser(cfg.Seed.AdminUsername, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		if errors.Is(err, auth.ErrUserNameExists) {
			return false, nil
		}

		return false, err
	}

	log.Warn().
		Str("username", cfg.Seed.AdminUsername).
		Msg("created initial admin account, change the password after first login")

	return true, nil
}

// SeedSamples stores the sample projects when the projects table is empty.
func SeedSamples(db *gorm.DB) (int, error) {
	count, err := project.Count(db)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		return 0, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range sampleProjects {
			if _, err := project.Create(tx, &sampleProjects[i]); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(sampleProjects), nil
}

// Seed fills an empty installation: admin account, sample projects and
// default settings. Existing rows are never overwritten.
func Seed(cfg *config.Config, db *gorm.DB) error {
	if _, err := SeedAdmin(cfg, db); err != nil {
		return err
	}

	created, err := SeedSamples(db)
	if err != nil {
		return err
	}

	if err = setting.SeedDefaults(db); err != nil {
		return err
	}

	log.Info().Int("projects", created).Msg("database seeded")

	return nil
}
