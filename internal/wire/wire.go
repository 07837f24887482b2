package wire

import (
	"Verdure/internal/api"
	"Verdure/internal/api/config"
	"Verdure/internal/api/handler"
	"Verdure/internal/job"
	"Verdure/internal/pkg/cron"
	"Verdure/internal/pkg/imagestore"
	"Verdure/internal/pkg/unsplash"
	"Verdure/internal/repository"
	"Verdure/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	contactRepo := repository.NewContactRepository(db)
	schedulerRepo := repository.NewSchedulerRepository(db)

	store, err := imagestore.New(cfg.Storage, cfg.Generator)
	if err != nil {
		return nil, err
	}

	generationService := service.NewGenerationService(
		postRepo,
		tagRepo,
		service.NewLLMGenerator(),
		unsplash.NewClient(cfg.Unsplash),
		store,
		cfg.Generator.PlaceholderURL,
		cfg.Generator.FeaturedPlaceholderURL,
	)
	schedulerService := service.NewSchedulerService(schedulerRepo, nil)
	postService := service.NewPostService(postRepo, tagRepo, categoryRepo)
	contactService := service.NewContactService(contactRepo)

	dailyPostJob := job.NewDailyPostJob(schedulerService, generationService, cfg.Generator.MaxRetries)

	handlers := &api.HandlersGroup{
		PostHandler:     handler.NewPostHandler(postService),
		ContactHandler:  handler.NewContactHandler(contactService),
		GenerateHandler: handler.NewGenerateHandler(generationService, dailyPostJob),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cron.NewCronManager(dailyPostJob),
	}, nil
}
