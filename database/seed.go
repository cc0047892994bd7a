package database

import (
	"errors"
	"fmt"

	"github.com/jmercer/portfolio-site-backend/errs"
	"github.com/jmercer/portfolio-site-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with the admin account and a starter set of
// projects. Running it against an already-seeded database is a no-op.
func (d Database) Seed(adminEmail, adminPassword string) error {
	if adminEmail == "" || adminPassword == "" {
		return errs.BadRequest("admin email and password are required for seeding")
	}

	_, err := d.userRepo.FindByEmail(adminEmail)
	if errors.Is(err, errs.ErrNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return fmt.Errorf("hashing admin password: %w", hashErr)
		}
		admin := models.User{
			Name:         "Admin",
			Email:        adminEmail,
			PasswordHash: string(hash),
		}
		if err := d.userRepo.Add(&admin); err != nil {
			return fmt.Errorf("creating admin user: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("looking up admin user: %w", err)
	}

	var count int64
	if err := d.projectRepo.db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, project := range sampleProjects() {
		if err := d.projectRepo.Add(&project); err != nil {
			return fmt.Errorf("creating sample project %q: %w", project.Title, err)
		}
	}
	return nil
}

func sampleProjects() []models.Project {
	return []models.Project{
		{
			Title:       "E-Commerce Dashboard",
			Description: "A comprehensive dashboard for e-commerce businesses with real-time analytics, inventory management, and customer insights.",
			ImageURL:    "/placeholder.svg?height=600&width=800",
			DemoURL:     "https://example.com/demo",
			RepoURL:     "https://github.com/example/repo",
			Category:    models.CategoryWeb,
			Tags:        "Next.js, TypeScript, Tailwind CSS, Prisma",
			Featured:    true,
		},
		{
			Title:       "Finance Mobile App",
			Description: "A mobile application for personal finance management with expense tracking, budgeting, and investment monitoring.",
			ImageURL:    "/placeholder.svg?height=600&width=800",
			DemoURL:     "https://example.com/demo",
			RepoURL:     "https://github.com/example/repo",
			Category:    models.CategoryMobile,
			Tags:        "React Native, Redux, Firebase",
			Featured:    false,
		},
		{
			Title:       "AI Content Generator",
			Description: "A web application that leverages AI to generate marketing content, blog posts, and social media captions.",
			ImageURL:    "/placeholder.svg?height=600&width=800",
			DemoURL:     "https://example.com/demo",
			RepoURL:     "https://github.com/example/repo",
			Category:    models.CategoryWeb,
			Tags:        "React, Node.js, OpenAI API",
			Featured:    true,
		},
	}
}
