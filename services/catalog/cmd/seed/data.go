package main

import (
	"fmt"
	"math/rand"
	"strings"

	"creator-hub/services/catalog/internal/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func demoCreators() []*entity.NewCreator {
	return []*entity.NewCreator{
		{
			Name:        "Luna Artistry",
			Slug:        "luna-artistry",
			Tagline:     "Digital illustrator creating vibrant fantasy worlds and character designs",
			Description: "Hey there! I'm Luna, a freelance digital artist specializing in fantasy illustration and character design. I've been creating art professionally for over 8 years, working with game studios, publishers, and indie creators.\n\nThrough my membership I share my creative process, tutorials, and exclusive artwork with my amazing community. Every month, patrons get access to high-resolution art files, time-lapse videos, brushes, and behind-the-scenes content.",
			Category:    entity.CategoryArt,
			AvatarURL:   "/images/creator-1.png",
			CoverURL:    strPtr("/images/cover-1.png"),
			PatronCount: 2847,
			PostCount:   156,
			IsVerified:  true,
			SocialLinks: &entity.SocialLinks{
				Twitter:   strPtr("https://twitter.com"),
				Instagram: strPtr("https://instagram.com"),
				Website:   strPtr("https://example.com"),
			},
		},
		{
			Name:        "Echo Sound Studio",
			Slug:        "echo-sound-studio",
			Tagline:     "Independent musician crafting ambient and electronic soundscapes",
			Description: "Welcome to Echo Sound Studio! I'm a producer and multi-instrumentalist creating ambient, electronic, and experimental music from my home studio.\n\nMembers get exclusive tracks, sample packs, production tutorials, live studio sessions and early access to every release.",
			Category:    entity.CategoryMusic,
			AvatarURL:   "/images/creator-2.png",
			CoverURL:    strPtr("/images/cover-2.png"),
			PatronCount: 1523,
			PostCount:   89,
			IsVerified:  true,
			SocialLinks: &entity.SocialLinks{
				Twitter: strPtr("https://twitter.com"),
				YouTube: strPtr("https://youtube.com"),
			},
		},
		{
			Name:        "The Daily Curious",
			Slug:        "the-daily-curious",
			Tagline:     "Weekly podcast exploring fascinating stories from science, history, and culture",
			Description: "The Daily Curious is a weekly podcast that dives deep into the most fascinating stories from science, history, technology, and culture.\n\nPatrons get ad-free episodes, bonus content, early access, and the ability to suggest topics. Higher tiers include our private community and monthly Q&A sessions.",
			Category:    entity.CategoryPodcasts,
			AvatarURL:   "/images/creator-3.png",
			CoverURL:    strPtr("/images/cover-3.png"),
			PatronCount: 4192,
			PostCount:   234,
			IsVerified:  true,
			SocialLinks: &entity.SocialLinks{
				Twitter:   strPtr("https://twitter.com"),
				YouTube:   strPtr("https://youtube.com"),
				Instagram: strPtr("https://instagram.com"),
			},
		},
		{
			Name:        "PixelForge Games",
			Slug:        "pixelforge-games",
			Tagline:     "Indie game developer building retro-inspired pixel art adventures",
			Description: "PixelForge Games is a solo indie game studio creating retro-inspired pixel art games with modern gameplay mechanics. Currently working on 'Starlight Wanderer', an open-world exploration RPG.\n\nPatrons get development updates, playable demos, concept art, and a say in design decisions.",
			Category:    entity.CategoryGaming,
			AvatarURL:   "/images/creator-4.png",
			CoverURL:    strPtr("/images/cover-1.png"),
			PatronCount: 892,
			PostCount:   67,
			IsVerified:  true,
			SocialLinks: &entity.SocialLinks{
				Twitter: strPtr("https://twitter.com"),
				YouTube: strPtr("https://youtube.com"),
				Website: strPtr("https://example.com"),
			},
		},
		{
			Name:        "Wordcraft Weekly",
			Slug:        "wordcraft-weekly",
			Tagline:     "Fiction writer and writing coach sharing stories, craft essays, and workshops",
			Description: "Hello! I'm a published fiction writer and writing coach. Wordcraft Weekly is where I share original fiction, craft essays, writing prompts, and workshops.\n\nHigher tiers include manuscript feedback, live workshops, and one-on-one coaching sessions.",
			Category:    entity.CategoryWriting,
			AvatarURL:   "/images/creator-5.png",
			CoverURL:    strPtr("/images/cover-2.png"),
			PatronCount: 1205,
			PostCount:   178,
			IsVerified:  true,
			SocialLinks: &entity.SocialLinks{
				Twitter: strPtr("https://twitter.com"),
				Website: strPtr("https://example.com"),
			},
		},
		{
			Name:        "Creative Spark Academy",
			Slug:        "creative-spark-academy",
			Tagline:     "Art education platform with tutorials, courses, and creative challenges",
			Description: "Creative Spark Academy is an online art education platform offering tutorials, courses, and creative challenges for artists of all levels.\n\nPatrons get our full library of video tutorials, monthly art challenges with feedback, and downloadable resources.",
			Category:    entity.CategoryEducation,
			AvatarURL:   "/images/creator-6.png",
			CoverURL:    strPtr("/images/cover-3.png"),
			PatronCount: 3456,
			PostCount:   312,
			IsVerified:  false,
			SocialLinks: &entity.SocialLinks{
				YouTube:   strPtr("https://youtube.com"),
				Instagram: strPtr("https://instagram.com"),
			},
		},
	}
}

func demoTiers(creatorID string) []*entity.NewTier {
	return []*entity.NewTier{
		{
			CreatorID:   creatorID,
			Name:        "Supporter",
			Price:       3,
			Description: "Show your support and get access to patron-only updates and community.",
			Benefits:    []string{"Patron-only updates", "Community access", "Early announcements", "Name on supporters list"},
		},
		{
			CreatorID:   creatorID,
			Name:        "Premium",
			Price:       10,
			Description: "Get full access to exclusive content and behind-the-scenes material.",
			Benefits:    []string{"Everything in Supporter", "Exclusive content library", "Behind-the-scenes access", "Monthly Q&A sessions", "Downloadable resources"},
			IsPopular:   true,
		},
		{
			CreatorID:   creatorID,
			Name:        "VIP",
			Price:       25,
			Description: "The ultimate experience with personalized perks and direct creator access.",
			Benefits:    []string{"Everything in Premium", "Direct creator access", "Personalized shout-outs", "Vote on upcoming content", "Exclusive merchandise discounts", "Credits in projects"},
		},
	}
}

// demoPosts returns two public and two patron-only posts; engagement counts come from rng.
func demoPosts(creator *entity.Creator, rng *rand.Rand) []*entity.NewPost {
	between := func(min, span int) int { return min + rng.Intn(span) }

	return []*entity.NewPost{
		{
			CreatorID:    creator.ID,
			Title:        fmt.Sprintf("Welcome to %s!", creator.Name),
			Content:      "Thank you so much for joining us! This is the beginning of something truly special. I've been working hard to bring you exclusive content, behind-the-scenes looks, and much more. Stay tuned for exciting updates, and don't hesitate to reach out with your thoughts and suggestions.",
			IsPublic:     true,
			LikeCount:    between(50, 150),
			CommentCount: between(5, 30),
		},
		{
			CreatorID:    creator.ID,
			Title:        "Behind the scenes: My creative process",
			Content:      "Ever wondered how I approach my work? In this exclusive post, I'm pulling back the curtain on my creative process. From initial inspiration to final polish, I'll share the tools I use, the challenges I face, and the moments of breakthrough that make it all worthwhile.",
			MinTierPrice: intPtr(3),
			LikeCount:    between(20, 80),
			CommentCount: between(3, 20),
		},
		{
			CreatorID:    creator.ID,
			Title:        "Monthly update: What's coming next",
			Content:      "It's time for the monthly roundup! Here's a quick preview of what's coming: new content series, collaboration announcements, community events, and some surprises that I think you'll really love.",
			IsPublic:     true,
			LikeCount:    between(30, 100),
			CommentCount: between(8, 25),
		},
		{
			CreatorID:    creator.ID,
			Title:        "Exclusive workshop recording",
			Content:      "This month's exclusive workshop is now available! We covered advanced techniques, answered your questions, and had an amazing time together. The full recording is available for Premium and VIP members.",
			MinTierPrice: intPtr(10),
			LikeCount:    between(15, 60),
			CommentCount: between(2, 15),
		},
	}
}

type productTemplate struct {
	name     string
	price    int
	category entity.ProductCategory
}

var productTemplates = []productTemplate{
	{"Digital Download Pack", 499, entity.ProductDigital},
	{"Premium Tutorial", 1299, entity.ProductDigital},
	{"Exclusive Content Bundle", 2499, entity.ProductDigital},
	{"Monthly Subscription Box", 3999, entity.ProductPhysical},
	{"Personalized Consultation", 5999, entity.ProductService},
	{"Collector's Edition", 7999, entity.ProductPhysical},
	{"VIP Experience", 9999, entity.ProductService},
	{"Starter Kit", 799, entity.ProductDigital},
	{"Pro Tools Bundle", 1999, entity.ProductDigital},
	{"Masterclass Access", 4999, entity.ProductDigital},
	{"Limited Print", 2999, entity.ProductPhysical},
	{"Quick Feedback Session", 3499, entity.ProductService},
	{"Resource Library Access", 1499, entity.ProductDigital},
	{"Custom Commission (Basic)", 4499, entity.ProductService},
	{"Custom Commission (Premium)", 8999, entity.ProductService},
	{"Merch Bundle", 2199, entity.ProductPhysical},
}

const (
	minProducts   = 6
	maxProducts   = 20
	minPriceCents = 99
)

// demoProducts tops a creator's shop up to a random size between minProducts
// and maxProducts. Prices vary by up to $2.50 around the template price.
func demoProducts(creator *entity.Creator, existing int, rng *rand.Rand) []*entity.NewProduct {
	target := minProducts + rng.Intn(maxProducts-minProducts+1)
	toAdd := target - existing
	if toAdd <= 0 {
		return nil
	}

	products := make([]*entity.NewProduct, 0, toAdd)
	for i := 0; i < toAdd; i++ {
		tmpl := productTemplates[i%len(productTemplates)]
		price := tmpl.price + rng.Intn(500) - 250
		if price < minPriceCents {
			price = minPriceCents
		}
		products = append(products, &entity.NewProduct{
			CreatorID:   creator.ID,
			Name:        tmpl.name,
			Description: fmt.Sprintf("Exclusive %s from %s. High-quality content created with care.", strings.ToLower(tmpl.name), creator.Name),
			Price:       price,
			Category:    tmpl.category,
			IsFeatured:  rng.Float64() > 0.7,
			SalesCount:  rng.Intn(200),
		})
	}
	return products
}
