package seeder

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"health-appointments/internal/domain/entity"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// NameSource supplies person names for generated doctor records, keeping the
// sampling logic independent of any particular fake-data library.
type NameSource interface {
	FirstName() string
	LastName() string
}

type fakeitNameSource struct {
	faker *gofakeit.Faker
}

func NewFakeitNameSource() NameSource {
	return &fakeitNameSource{faker: gofakeit.New(0)}
}

func (s *fakeitNameSource) FirstName() string { return s.faker.FirstName() }
func (s *fakeitNameSource) LastName() string  { return s.faker.LastName() }

var (
	specializations = []string{
		"Cardiologist", "Neurologist", "Dermatologist", "Orthopedic Surgeon",
		"General Physician", "Pediatrician", "Oncologist", "Endocrinologist",
		"Gastroenterologist",
	}
	locations = []string{
		"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad",
		"Pune", "Ahmedabad",
	}
	hospitals = []string{
		"City Hospital", "Apollo Clinic", "Fortis Health", "Manipal Center",
		"Max Healthcare", "Global Medical", "Sunrise Institute",
	}
	weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// Generator produces synthetic doctor records for bootstrap seeding.
type Generator struct {
	names NameSource
	rand  *rand.Rand
}

func NewGenerator(names NameSource, seed int64) *Generator {
	return &Generator{
		names: names,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// GenerateDoctorBatch builds count doctors: specialization and city from the
// fixed sets, experience 5-25 years, fee a 100-multiple between 800 and 2500,
// and a single visiting-hours window over 3-5 weekdays.
func (g *Generator) GenerateDoctorBatch(count int) []entity.Doctor {
	doctors := make([]entity.Doctor, 0, count)
	for i := 0; i < count; i++ {
		location := locations[g.rand.Intn(len(locations))]
		doctors = append(doctors, entity.Doctor{
			Name:            fmt.Sprintf("Dr. %s %s", g.names.FirstName(), g.names.LastName()),
			Specialization:  specializations[g.rand.Intn(len(specializations))],
			ExperienceYears: g.intBetween(5, 25),
			Location:        location,
			HospitalName:    fmt.Sprintf("%s, %s", hospitals[g.rand.Intn(len(hospitals))], location),
			ConsultationFee: decimal.NewFromInt(int64(g.intBetween(8, 25) * 100)),
			VisitingHours:   g.visitingHours(),
		})
	}
	return doctors
}

func (g *Generator) visitingHours() entity.VisitingHours {
	start := g.intBetween(9, 14)
	end := start + g.intBetween(2, 4)

	days := append([]string(nil), weekdays...)
	g.rand.Shuffle(len(days), func(i, j int) { days[i], days[j] = days[j], days[i] })
	days = days[:g.intBetween(3, 5)]
	sort.Strings(days)

	return entity.VisitingHours{
		strings.Join(days, ","): fmt.Sprintf("%02d:00-%02d:00", start, end),
	}
}

// intBetween returns a uniform value in [min, max].
func (g *Generator) intBetween(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}
