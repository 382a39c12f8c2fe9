package main

import (
	"context"
	"fmt"
	"log"

	"github.com/vitrina-app/vitrina-backend/config"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/vitrina-app/vitrina-backend/internal/app/repository"
	"github.com/vitrina-app/vitrina-backend/internal/store"
	"github.com/vitrina-app/vitrina-backend/pkg/redis"
)

// Seeds the remote store with a small demo catalog so a fresh storefront
// has something to show. Safe to re-run: records are appended with fresh
// push ids, settings are only written when absent.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	var st store.Store
	switch cfg.Store.Backend {
	case "redis":
		if err := redis.Init(&cfg.Redis); err != nil {
			log.Fatal("Failed to connect to Redis: ", err)
		}
		defer redis.Close()
		st = store.NewRedis(redis.GetClient())
	default:
		st = store.NewFirebase(cfg.Store.FirebaseURL, cfg.Store.FirebaseAuth)
	}

	products := demoProducts()
	categories := demoCategories()
	reviews := demoReviews()

	fmt.Printf("Seeding %d products, %d categories, %d reviews into the %s store\n",
		len(products), len(categories), len(reviews), cfg.Store.Backend)
	fmt.Print("Do you want to proceed? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Seed cancelled.")
		return
	}

	ctx := context.Background()

	productRepo := repository.NewProductRepository(st)
	categoryRepo := repository.NewCategoryRepository(st)
	reviewRepo := repository.NewReviewRepository(st)
	settingsRepo := repository.NewSettingsRepository(st)

	for _, p := range products {
		id, err := productRepo.Create(ctx, p)
		if err != nil {
			log.Fatal("Failed to seed product: ", err)
		}
		fmt.Printf("  product %-30s -> %s\n", p.Name, id)
	}

	for _, c := range categories {
		id, err := categoryRepo.Create(ctx, c)
		if err != nil {
			log.Fatal("Failed to seed category: ", err)
		}
		fmt.Printf("  category %-29s -> %s\n", c.Name, id)
	}

	for _, r := range reviews {
		id, err := reviewRepo.Create(ctx, r)
		if err != nil {
			log.Fatal("Failed to seed review: ", err)
		}
		fmt.Printf("  review by %-28s -> %s\n", r.UserName, id)
	}

	if _, err := settingsRepo.Find(ctx); err != nil {
		if err := settingsRepo.Init(ctx, model.DefaultSettings()); err != nil {
			log.Fatal("Failed to seed settings: ", err)
		}
		fmt.Println("  settings initialized with defaults")
	} else {
		fmt.Println("  settings already present, left untouched")
	}

	fmt.Println("Seed completed successfully!")
}

func demoProducts() []model.Product {
	return []model.Product{
		{
			Name:        "Ceramic Mug",
			Price:       14.90,
			BeforePrice: 19.90,
			Description: "Hand-glazed stoneware mug, 350ml.",
			Category:    []string{"Kitchen"},
			Images:      []string{"https://i.ibb.co/demo/mug.jpg"},
		},
		{
			Name:        "Linen Tote Bag",
			Price:       24.00,
			Description: "Natural linen tote with leather straps.",
			Category:    []string{"Accessories"},
			Images:      []string{"https://i.ibb.co/demo/tote.jpg"},
		},
		{
			Name:            "Walnut Cutting Board",
			Price:           39.50,
			Description:     "End-grain walnut board, oil finished.",
			Category:        []string{"Kitchen", "Wood"},
			Images:          []string{"https://i.ibb.co/demo/board.jpg"},
			YoutubeVideoURL: "https://www.youtube.com/watch?v=demo",
		},
	}
}

func demoCategories() []model.Category {
	return []model.Category{
		{
			Name:        "Kitchen",
			Image:       "https://i.ibb.co/demo/kitchen.jpg",
			Description: "Everyday tableware and cookware.",
		},
		{
			Name: "Accessories",
		},
		{
			Name:        "Wood",
			Image:       "https://i.ibb.co/demo/wood.jpg",
			Description: "Handmade wooden goods.",
		},
	}
}

func demoReviews() []model.Review {
	return []model.Review{
		{
			UserName: "Maria",
			Text:     "The mug arrived quickly and looks even better in person.",
			Images:   []string{"https://i.ibb.co/demo/review1.jpg"},
		},
		{
			UserName: "Jonas",
			Text:     "Great quality board, will order again.",
		},
	}
}
