// README: Fixed itinerary prompt template.
package prompt

// itineraryTemplate is substituted verbatim. The late-arrival and early-departure
// guidance is instruction text for the model; nothing here evaluates it.
const itineraryTemplate = `You are an AI travel planner. The user is traveling to {destination} and has the following preferences:

{preferences}

The user will arrive on {arrival_date} at {arrival_time} and depart on {departure_date} at {departure_time}.

Create a detailed itinerary that balances the user's preferences. Ensure the following:
- Activities start after the user's arrival time and finish well before departure time.
- If the user arrives late (e.g., after 9 PM), only suggest light activities such as meals or evening walks for that day.
- If the user departs early (e.g., before 9 AM), avoid scheduling activities on those days, except for meals or checking out.
- Include specific places to visit, recommended activities, dining options, and suitable accommodations.
- Allow reasonable time gaps for travel, meals, and rest between activities.
- Use the following external data about {destination}:
    {external_data}`
