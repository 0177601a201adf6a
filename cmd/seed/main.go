package main

import (
	"context"
	"fmt"
	"time"

	"mindsync-server/config"
	"mindsync-server/internal/domain/entity"
	"mindsync-server/internal/infrastructure/cache"
	"mindsync-server/internal/infrastructure/database"
	"mindsync-server/internal/repository"
	"mindsync-server/pkg/jwt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var specializations = []string{
	"Clinical Psychology",
	"Psychiatry",
	"Counseling",
	"Child Psychology",
	"Addiction Therapy",
	"Cognitive Behavioral Therapy",
	"Trauma Therapy",
}

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.Info("Seed starting")

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.App.MigrationsPath); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedDoctors(db, 25); err != nil {
		logrus.Fatalf("Failed to seed doctors: %v", err)
	}
	if err := seedPatients(db, 200); err != nil {
		logrus.Fatalf("Failed to seed patients: %v", err)
	}
	if err := seedRelaxationActivities(db); err != nil {
		logrus.Fatalf("Failed to seed relaxation activities: %v", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	if err := seedDevAccounts(db, redisClient, cfg); err != nil {
		logrus.Fatalf("Failed to seed dev accounts: %v", err)
	}

	logrus.Info("Seed complete")
}

// seedDevAccounts creates one account per role with a fixed email and logs a
// ready-to-use bearer token for each. Tokens only pass the auth middleware
// when the matching access_token key exists in Redis, so the key is stored
// the same way a login would store it.
func seedDevAccounts(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) error {
	logrus.Info("Seeding dev accounts")

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	jwtService := jwt.NewJWTService(cfg.JWT)
	userRepo := repository.NewUserRepository()
	ctx := context.Background()

	accounts := []struct {
		email  string
		roleID int
	}{
		{"admin@mindsync.dev", entity.RoleIDAdmin},
		{"doctor@mindsync.dev", entity.RoleIDDoctor},
		{"patient@mindsync.dev", entity.RoleIDPatient},
	}

	for _, acc := range accounts {
		user, err := userRepo.FindByEmail(db, acc.email)
		if err != nil {
			return err
		}
		if user == nil {
			user = &entity.User{
				RoleID:    acc.roleID,
				Email:     acc.email,
				Password:  string(password),
				FirstName: "Dev",
				LastName:  gofakeit.LastName(),
			}
			if err := createDevUser(db, user); err != nil {
				return err
			}
		}

		accessToken, accessTokenID, err := jwtService.GenerateAccessToken(user.ID, user.RoleID, user.Email)
		if err != nil {
			return err
		}
		refreshToken, refreshTokenID, err := jwtService.GenerateRefreshToken(user.ID, user.RoleID, user.Email)
		if err != nil {
			return err
		}

		accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
		refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)
		if err := redisClient.Set(ctx, accessKey, "valid", jwtService.GetAccessExpiry()).Err(); err != nil {
			return err
		}
		if err := redisClient.Set(ctx, refreshKey, "valid", jwtService.GetRefreshExpiry()).Err(); err != nil {
			return err
		}

		logrus.Infof("Dev account %s access token: %s", acc.email, accessToken)
		logrus.Infof("Dev account %s refresh token: %s", acc.email, refreshToken)
	}

	return nil
}

// createDevUser inserts the user plus the profile its role requires
func createDevUser(db *gorm.DB, user *entity.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		switch user.RoleID {
		case entity.RoleIDDoctor:
			profile := entity.DoctorProfile{
				UserID:                 user.ID,
				LicenseNumber:          gofakeit.Regex(`MH[0-9]{8}`),
				Specializations:        entity.StringList{"Clinical Psychology"},
				YearsOfExperience:      10,
				ConsultationFee:        decimal.NewFromInt(1500),
				Currency:               "INR",
				SessionDurationMinutes: 45,
				Availability:           defaultAvailability(),
				VerificationStatus:     entity.VerificationStatusVerified,
			}
			return tx.Create(&profile).Error
		case entity.RoleIDPatient:
			profile := entity.PatientProfile{
				UserID:      user.ID,
				PhoneNumber: gofakeit.Phone(),
				DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
				Gender:      entity.GenderFemale,
			}
			return tx.Create(&profile).Error
		}
		return nil
	})
}

func seedDoctors(db *gorm.DB, count int) error {
	logrus.Infof("Seeding %d doctors", count)

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < count; i++ {
			user := entity.User{
				RoleID:    entity.RoleIDDoctor,
				Email:     gofakeit.Email(),
				Password:  string(password),
				FirstName: gofakeit.FirstName(),
				LastName:  gofakeit.LastName(),
				Bio:       gofakeit.Sentence(12),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			profile := entity.DoctorProfile{
				UserID:                 user.ID,
				LicenseNumber:          gofakeit.Regex(`MH[0-9]{8}`),
				Specializations:        entity.StringList{specializations[gofakeit.Number(0, len(specializations)-1)]},
				YearsOfExperience:      gofakeit.Number(2, 25),
				Biography:              gofakeit.Paragraph(1, 3, 12, " "),
				ConsultationFee:        decimal.NewFromInt(int64(gofakeit.Number(500, 3000))),
				Currency:               "INR",
				SessionDurationMinutes: 45,
				Availability:           defaultAvailability(),
				VerificationStatus:     entity.VerificationStatusVerified,
				RatingAverage:          gofakeit.Float64Range(3.0, 5.0),
				RatingCount:            gofakeit.Number(0, 400),
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedPatients(db *gorm.DB, count int) error {
	logrus.Infof("Seeding %d patients", count)

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < count; i++ {
			user := entity.User{
				RoleID:    entity.RoleIDPatient,
				Email:     gofakeit.Email(),
				Password:  string(password),
				FirstName: gofakeit.FirstName(),
				LastName:  gofakeit.LastName(),
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			gender := entity.GenderMale
			if gofakeit.Bool() {
				gender = entity.GenderFemale
			}
			profile := entity.PatientProfile{
				UserID:      user.ID,
				PhoneNumber: gofakeit.Phone(),
				DateOfBirth: gofakeit.DateRange(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)),
				Gender:      gender,
			}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func seedRelaxationActivities(db *gorm.DB) error {
	logrus.Info("Seeding relaxation activities")

	categories := []string{
		entity.ActivityCategoryBreathing,
		entity.ActivityCategoryMeditation,
		entity.ActivityCategoryMindfulness,
		entity.ActivityCategorySleep,
	}
	difficulties := []string{
		entity.DifficultyBeginner,
		entity.DifficultyIntermediate,
		entity.DifficultyAdvanced,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < 40; i++ {
			activity := entity.RelaxationActivity{
				Title:           gofakeit.Sentence(4),
				Description:     gofakeit.Paragraph(1, 2, 10, " "),
				Category:        categories[gofakeit.Number(0, len(categories)-1)],
				Difficulty:      difficulties[gofakeit.Number(0, len(difficulties)-1)],
				DurationMinutes: gofakeit.Number(5, 30),
				AudioURL:        gofakeit.URL(),
			}
			if err := tx.Create(&activity).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// defaultAvailability gives seeded doctors a weekday 9-to-5 style template
// with 45 minute sessions and a lunch gap.
func defaultAvailability() entity.Availability {
	starts := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	days := []int{1, 2, 3, 4, 5}

	var slots []entity.TemplateSlot
	for _, day := range days {
		for _, start := range starts {
			t, _ := entity.ParseClockTime(start)
			end := t.Add(45 * time.Minute).Format("15:04")
			slots = append(slots, entity.TemplateSlot{
				DayOfWeek: day,
				StartTime: start,
				EndTime:   end,
			})
		}
	}

	return entity.Availability{
		WorkingDays: days,
		Slots:       slots,
	}
}
