// Command seed creates a customer with purchased courses, standing in for the
// checkout flow when running the orders pages locally.
//
//	seed -email ada@example.com -password secret -course go-101:"Go Basics":4900
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/courseorders/internal/config"
	"github.com/example/courseorders/internal/database"
	"github.com/example/courseorders/internal/logger"
	"github.com/example/courseorders/internal/models"
	"github.com/example/courseorders/internal/store"
	"github.com/example/courseorders/internal/utils"
)

var errCourseFormat = errors.New("course must look like id:title:amount")

// courseList collects repeated -course flags.
type courseList []models.Order

func (l *courseList) String() string {
	parts := make([]string, 0, len(*l))
	for _, o := range *l {
		parts = append(parts, fmt.Sprintf("%s:%s:%d", o.CourseID, o.CourseTitle, o.AmountTotal))
	}
	return strings.Join(parts, ",")
}

func (l *courseList) Set(value string) error {
	order, err := parseCourse(value)
	if err != nil {
		return err
	}
	*l = append(*l, order)
	return nil
}

// parseCourse reads "id:title:amount"; the title may itself contain colons.
func parseCourse(value string) (models.Order, error) {
	first := strings.Index(value, ":")
	last := strings.LastIndex(value, ":")
	if first <= 0 || last == first {
		return models.Order{}, errCourseFormat
	}

	id := strings.TrimSpace(value[:first])
	title := strings.TrimSpace(value[first+1 : last])
	amount, err := strconv.ParseInt(strings.TrimSpace(value[last+1:]), 10, 64)
	if err != nil || id == "" || title == "" || amount < 0 {
		return models.Order{}, errCourseFormat
	}

	return models.Order{CourseID: id, CourseTitle: title, AmountTotal: amount}, nil
}

func main() {
	var (
		email    = flag.String("email", "", "customer email")
		name     = flag.String("name", "", "customer display name")
		password = flag.String("password", "", "customer password")
		courses  courseList
	)
	flag.Var(&courses, "course", "purchased course as id:title:amount (repeatable)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New("course-orders-seed", cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	user := &models.User{
		Email:        *email,
		Name:         *name,
		PasswordHash: hash,
		Orders:       courses,
	}
	if err := store.NewCustomerStore(db).Create(context.Background(), user); err != nil {
		log.Fatal().Err(err).Msg("create customer")
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("email", user.Email).
		Int("orders", len(user.Orders)).
		Msg("customer seeded")
}
