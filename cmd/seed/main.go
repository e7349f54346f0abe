package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Vehicle is the fleet payload accepted by POST /fleet.
type Vehicle struct {
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Type         string   `json:"type"`
	Transmission string   `json:"transmission"`
	Fuel         string   `json:"fuel"`
	Seats        int      `json:"seats"`
	DailyRate    float64  `json:"daily_rate"`
	Colour       string   `json:"colour,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// Testimonial is the payload accepted by POST /testimonials.
type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Post is the payload accepted by POST /posts.
type Post struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt,omitempty"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

type catalogueEntry struct {
	Make  string
	Model string
	Fuel  string
	Seats int
	Rate  float64 // base daily rate in GBP
}

// Vehicles the company hires out, by body type
var catalogue = map[string][]catalogueEntry{
	"Saloon": {
		{Make: "BMW", Model: "5 Series", Fuel: "Diesel", Seats: 5, Rate: 120},
		{Make: "Mercedes-Benz", Model: "E-Class", Fuel: "Hybrid", Seats: 5, Rate: 135},
		{Make: "Tesla", Model: "Model 3", Fuel: "Electric", Seats: 5, Rate: 110},
		{Make: "Jaguar", Model: "XF", Fuel: "Petrol", Seats: 5, Rate: 115},
	},
	"Estate": {
		{Make: "Audi", Model: "A6 Avant", Fuel: "Diesel", Seats: 5, Rate: 125},
		{Make: "Volvo", Model: "V90", Fuel: "Hybrid", Seats: 5, Rate: 118},
	},
	"SUV": {
		{Make: "Range Rover", Model: "Sport", Fuel: "Diesel", Seats: 5, Rate: 190},
		{Make: "Volvo", Model: "XC90", Fuel: "Hybrid", Seats: 7, Rate: 160},
		{Make: "Tesla", Model: "Model Y", Fuel: "Electric", Seats: 5, Rate: 130},
		{Make: "Mercedes-Benz", Model: "V-Class", Fuel: "Diesel", Seats: 8, Rate: 175},
	},
	"Coupe": {
		{Make: "Porsche", Model: "911", Fuel: "Petrol", Seats: 4, Rate: 320},
		{Make: "BMW", Model: "M4", Fuel: "Petrol", Seats: 4, Rate: 240},
	},
}

var bodyTypes = []string{"Saloon", "Estate", "SUV", "Coupe"}

var colours = []string{"Black", "White", "Silver", "Grey", "Blue", "Red"}

var testimonials = []Testimonial{
	{Name: "Sarah M.", Role: "Wedding client", Content: "The car arrived spotless and the driver was early. Made our day.", Rating: 5},
	{Name: "James P.", Role: "Business traveller", Content: "Collected from Heathrow with no fuss. Will book again.", Rating: 5},
	{Name: "Priya K.", Content: "Great range of cars and fair prices for a long weekend.", Rating: 4},
}

var posts = []Post{
	{
		Title:     "Choosing the right car for a road trip",
		Slug:      "choosing-the-right-car-for-a-road-trip",
		Excerpt:   "Estate, SUV or saloon? A quick guide.",
		Content:   "Luggage space, fuel range and comfort all matter on a long drive. Here is how our fleet compares.",
		Published: true,
	},
	{
		Title:     "Making an accident claim",
		Slug:      "making-an-accident-claim",
		Excerpt:   "What to have ready before you fill in the claim form.",
		Content:   "Note the date, location and registration of every vehicle involved, and take photos before anything is moved.",
		Published: true,
	},
}

var client = &http.Client{Timeout: 10 * time.Second}

func randomVehicle() Vehicle {
	vtype := bodyTypes[rand.Intn(len(bodyTypes))]
	entries := catalogue[vtype]
	entry := entries[rand.Intn(len(entries))]

	transmission := "Automatic"
	if entry.Fuel != "Electric" && rand.Intn(4) == 0 {
		transmission = "Manual"
	}
	year := 2020 + rand.Intn(5) // 2020-2024

	// newer cars cost a little more
	rate := entry.Rate + float64(year-2020)*5

	return Vehicle{
		Make:         entry.Make,
		Model:        entry.Model,
		Year:         year,
		Type:         vtype,
		Transmission: transmission,
		Fuel:         entry.Fuel,
		Seats:        entry.Seats,
		DailyRate:    rate,
		Colour:       colours[rand.Intn(len(colours))],
		Tags:         []string{strings.ToLower(vtype), strings.ToLower(entry.Fuel)},
	}
}

// postJSON posts payload to url and returns the id the API assigned.
func postJSON(url string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to post to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("post to %s failed with status: %d", url, resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	id, ok := result["id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid id in response")
	}
	return id, nil
}

func createVehicle(apiURL string) (string, error) {
	vehicle := randomVehicle()
	id, err := postJSON(apiURL+"/fleet", vehicle)
	if err != nil {
		return "", err
	}
	log.WithFields(log.Fields{
		"vehicle_id": id,
		"type":       vehicle.Type,
		"make":       vehicle.Make,
		"model":      vehicle.Model,
	}).Info("Created vehicle")
	return id, nil
}

// seedResult counts the records created by seed.
type seedResult struct {
	Vehicles     int
	Testimonials int
	Posts        int
}

func seed(apiURL string, fleetSize int) seedResult {
	var res seedResult
	for i := 0; i < fleetSize; i++ {
		if _, err := createVehicle(apiURL); err != nil {
			log.WithError(err).Error("Failed to create vehicle")
			continue
		}
		res.Vehicles++
	}
	for _, t := range testimonials {
		if _, err := postJSON(apiURL+"/testimonials", t); err != nil {
			log.WithError(err).WithField("name", t.Name).Error("Failed to create testimonial")
			continue
		}
		res.Testimonials++
	}
	for _, p := range posts {
		if _, err := postJSON(apiURL+"/posts", p); err != nil {
			log.WithError(err).WithField("slug", p.Slug).Error("Failed to create post")
			continue
		}
		res.Posts++
	}
	return res
}

func main() {
	fleetSize := 10
	if val := os.Getenv("FLEET_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			fleetSize = n
		}
	}

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000/api"
	}
	apiURL = strings.TrimSuffix(apiURL, "/")

	log.WithFields(log.Fields{
		"fleet_size": fleetSize,
		"api_url":    apiURL,
	}).Info("Seeding catalogue")

	res := seed(apiURL, fleetSize)

	log.WithFields(log.Fields{
		"vehicles":     res.Vehicles,
		"testimonials": res.Testimonials,
		"posts":        res.Posts,
	}).Info("Seeding completed")
	if res.Vehicles == 0 && fleetSize > 0 {
		log.Error("No vehicles created. Ensure the API is reachable.")
		os.Exit(1)
	}
}
