package app

import (
	"github.com/buildsbyrafael/datapersistence/internal/absence"
	"github.com/buildsbyrafael/datapersistence/internal/analytics"
	"github.com/buildsbyrafael/datapersistence/internal/importer"
	"github.com/buildsbyrafael/datapersistence/internal/pay"
	"github.com/buildsbyrafael/datapersistence/internal/remark"
	"github.com/buildsbyrafael/datapersistence/internal/role"
	"github.com/buildsbyrafael/datapersistence/internal/servant"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB, cache *redis.Client, publisher importer.EventPublisher) {
	v1 := router.Group("/v1")

	servantHandler := servant.NewHandler(servant.NewService(servant.NewRepository(db), publisher))
	servant.RegisterRoutes(v1, servantHandler)

	payHandler := pay.NewHandler(pay.NewService(pay.NewRepository(db), publisher))
	pay.RegisterRoutes(v1, payHandler)

	absenceHandler := absence.NewHandler(absence.NewService(absence.NewRepository(db), publisher))
	absence.RegisterRoutes(v1, absenceHandler)

	remarkHandler := remark.NewHandler(remark.NewService(remark.NewRepository(db), publisher))
	remark.RegisterRoutes(v1, remarkHandler)

	roleHandler := role.NewHandler(role.NewService(role.NewRepository(db), publisher))
	role.RegisterRoutes(v1, roleHandler)

	analyticsService := analytics.NewService(analytics.NewRepository(db), analytics.NewNoopChartRenderer())
	analytics.RegisterRoutes(v1, analytics.NewHandler(analyticsService, cache))
}
