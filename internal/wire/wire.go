package wire

import (
	"CareerBridge/internal/api"
	"CareerBridge/internal/api/config"
	"CareerBridge/internal/api/handler"
	"CareerBridge/internal/job"
	"CareerBridge/internal/pkg/cron"
	"CareerBridge/internal/pkg/es"
	"CareerBridge/internal/pkg/kafka"
	"CareerBridge/internal/pkg/mail"
	"CareerBridge/internal/pkg/mongo"
	"CareerBridge/internal/pkg/recommend"
	"CareerBridge/internal/repository"
	"CareerBridge/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
	mongoDB "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	UserService  service.UserService
	KafkaManager *kafka.ConsumerManager
	Producer     *kafka.ApplicationProducer
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDatabase *mongoDB.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	jobRepo := repository.NewJobRepo(db)
	courseRepo := repository.NewCourseRepo(db)
	applicationRepo := repository.NewApplicationRepo(db)
	recommendationRepo := repository.NewRecommendationRepo(db)
	resumeRepo := repository.NewResumeRepo(db)
	systemRepo := repository.NewSystemRepo(db)
	sysBoxRepo := mongo.NewSysBoxRepo(mongoDatabase)
	jobESRepo := es.NewJobRepo(es.Client)

	scorer := recommend.NewScorer(cfg.Recommend.JobMinScore, cfg.Recommend.CourseMaxOverlap)

	userService := service.NewUserService(userRepo)
	recommendationService := service.NewRecommendationService(profileRepo, jobRepo, courseRepo, recommendationRepo, scorer)
	profileService := service.NewProfileService(profileRepo, recommendationService)
	jobService := service.NewJobService(jobRepo, jobESRepo)
	courseService := service.NewCourseService(courseRepo)
	resumeService := service.NewResumeService(resumeRepo)
	sysBoxService := service.NewSysBoxService(sysBoxRepo)
	systemService := service.NewSystemService(systemRepo)
	notifyService := service.NewNotifyService(sysBoxRepo, userRepo, mail.NewRelay(cfg.Mail))

	// 未配置 Kafka 时进程内直接通知
	var (
		publisher service.EventPublisher = service.NewDirectPublisher(notifyService)
		producer  *kafka.ApplicationProducer
		kafkaMgr  *kafka.ConsumerManager
		err       error
	)
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.NewApplicationProducer(cfg)
		if err != nil {
			return nil, err
		}
		kafkaMgr, err = kafka.NewConsumerManager(cfg, notifyService)
		if err != nil {
			_ = producer.Close()
			return nil, err
		}
		publisher = producer
	} else {
		log.Warn("Kafka brokers not configured, application events are handled in-process")
	}
	applicationService := service.NewApplicationService(jobRepo, applicationRepo, publisher)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		ProfileHandler: handler.NewProfileHandler(profileService),
		JobHandler:     handler.NewJobHandler(jobService, applicationService, recommendationService),
		CourseHandler:  handler.NewCourseHandler(courseService),
		ResumeHandler:  handler.NewResumeHandler(resumeService),
		SysBoxHandler:  handler.NewSysBoxHandler(sysBoxService),
		SystemHandler:  handler.NewSystemHandler(systemService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewJobExpireJob(jobService))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		UserService:  userService,
		KafkaManager: kafkaMgr,
		Producer:     producer,
		CronMgr:      cronMgr,
	}, nil
}
