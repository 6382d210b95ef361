package bootstrap

import (
	"anoa.com/schoolregistry/internal/entity"
	"anoa.com/schoolregistry/pkg/logger"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(entity.All()...)
}

// SeedFaculties creates the default faculties that are missing. Existing rows are left alone.
func SeedFaculties(db *gorm.DB) error {
	defaultFaculties := []entity.Faculty{
		{Name: "Gryffindor", Color: "red"},
		{Name: "Hufflepuff", Color: "yellow"},
		{Name: "Ravenclaw", Color: "blue"},
		{Name: "Slytherin", Color: "green"},
	}

	created := 0
	for _, faculty := range defaultFaculties {
		var count int64
		if err := db.Model(&entity.Faculty{}).
			Where("name = ?", faculty.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&faculty).Error; err != nil {
				return err
			}
			created++
		}
	}

	if created > 0 {
		logger.Info().Int("created", created).Msg("default faculties seeded")
	}
	return nil
}
