package itinerary

// Sample is the built-in draft restored by Reset Sample.
const Sample = `{
  "city": "Paris",
  "duration_days": 5,
  "itinerary": [
    {
      "day": 1,
      "title": "Arrival & Iconic Landmarks",
      "activities": [
        "Arrive in Paris and check into hotel",
        "Visit Eiffel Tower (preferably at sunset)",
        "Walk along the Seine River",
        "Dinner at a nearby French bistro"
      ]
    },
    {
      "day": 2,
      "title": "Historic Paris",
      "activities": [
        "Breakfast at a local café",
        "Explore Notre-Dame Cathedral",
        "Visit Sainte-Chapelle",
        "Lunch in the Latin Quarter",
        "Walk through Luxembourg Gardens",
        "Evening at Montmartre and Sacré-Cœur"
      ]
    }
  ]
}`
