package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"school-platform/config"
	"school-platform/domain/content"
	"school-platform/pkg/logger"
)

// Seeds the starter records the public site expects: hero banners in
// both languages plus the welcome slideshow. Run once against a fresh
// database; an already-populated store is left untouched.
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	config.InitConfig()
	logger.Init(logger.Config{
		Level:       logger.Level(viper.GetString("LOG_LEVEL")),
		Environment: viper.GetString("ENVIRONMENT"),
	})

	seedLog := logger.Get().WithComponent("seeder")
	store := content.NewStore(seedLog)
	svc := content.NewService(store)

	ctx := context.Background()

	existing, err := svc.ListAdmin(ctx, "", "")
	if err != nil {
		seedLog.Fatal("Failed to inspect content store", err)
	}
	if len(existing) > 0 {
		seedLog.Info("Store already contains content, skipping seed",
			logger.Count(len(existing)))
		return
	}

	records := []content.CreateRequest{
		{
			Title:    "Online Community of Teachers and Students",
			Body:     "Welcome to Moulay Ismail High School online platform where teachers and students collaborate and learn together.",
			Section:  content.SectionHero,
			Language: content.LanguageEN,
		},
		{
			Title:    "مجتمع تعليمي للمعلمين والطلاب عبر الإنترنت",
			Body:     "مرحبًا بكم في منصة ثانوية مولاي إسماعيل الإلكترونية حيث يتعاون المعلمون والطلاب ويتعلمون معًا.",
			Section:  content.SectionHero,
			Language: content.LanguageAR,
		},
		{
			Title:    "Welcome to our Community",
			Body:     "Join our vibrant educational community",
			ImageURL: "https://placehold.co/1200x800",
			Section:  content.SectionSlideshow,
			Order:    0,
			Language: content.LanguageEN,
		},
		{
			Title:    "Engage with Teachers and Students",
			Body:     "Connect and collaborate with educators and learners",
			ImageURL: "https://placehold.co/1200x800",
			Section:  content.SectionSlideshow,
			Order:    1,
			Language: content.LanguageEN,
		},
	}

	for _, rec := range records {
		created, err := svc.Create(ctx, rec)
		if err != nil {
			seedLog.Fatal("Failed to seed content", err,
				logger.Section(rec.Section), logger.Language(rec.Language))
		}
		seedLog.Info("Seeded content",
			logger.ContentID(created.ID),
			logger.Section(created.Section),
			logger.Language(created.Language))
	}

	seedLog.Info("Seeding complete", logger.Count(len(records)), logger.StoreMode(store.Mode()))
}
