package chatbot

// GetTools returns all available tool definitions for the AI
func GetTools() []Tool {
	return []Tool{
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "get_pilot_roster",
				Description: "Search the pilot roster. Use this to find pilots by skill, certification, location, or availability status. Returns a list of matching pilots with their rates and current assignments.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"skill": map[string]interface{}{
							"type":        "string",
							"description": "Filter by a required skill (partial match, e.g. 'thermal' or 'mapping')",
						},
						"certification": map[string]interface{}{
							"type":        "string",
							"description": "Filter by a required certification (partial match, e.g. 'DGCA')",
						},
						"location": map[string]interface{}{
							"type":        "string",
							"description": "Filter by pilot location (partial match)",
						},
						"status": map[string]interface{}{
							"type":        "string",
							"description": "Filter by exact status: Available, Assigned, On Leave, or Unavailable",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "get_pilot_details",
				Description: "Get full details for one pilot by pilot ID or by name, including skills, certifications, daily rate, and current assignments.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"pilot_id": map[string]interface{}{
							"type":        "string",
							"description": "The pilot ID (e.g. P001)",
						},
						"name": map[string]interface{}{
							"type":        "string",
							"description": "The pilot name (partial match); used when pilot_id is not given",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "update_pilot_status",
				Description: "Update a pilot's availability status, optionally with a note. The change is written back to the roster store.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"pilot_id": map[string]interface{}{
							"type":        "string",
							"description": "The pilot ID (e.g. P001)",
						},
						"new_status": map[string]interface{}{
							"type":        "string",
							"description": "New status: Available, Assigned, On Leave, or Unavailable",
						},
						"note": map[string]interface{}{
							"type":        "string",
							"description": "Optional note explaining the change",
						},
					},
					"required": []string{"pilot_id", "new_status"},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "calculate_pilot_cost",
				Description: "Estimate what a pilot would cost for a date range, from their daily rate. Dates are inclusive on both ends.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"pilot_id": map[string]interface{}{
							"type":        "string",
							"description": "The pilot ID (e.g. P001)",
						},
						"start_date": map[string]interface{}{
							"type":        "string",
							"description": "Start date (YYYY-MM-DD preferred; DD/MM/YYYY also accepted)",
						},
						"end_date": map[string]interface{}{
							"type":        "string",
							"description": "End date, inclusive",
						},
					},
					"required": []string{"pilot_id", "start_date", "end_date"},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "get_drone_fleet",
				Description: "Search the drone fleet. Use this to find drones by capability, status, location, or suitability for a weather forecast.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"capability": map[string]interface{}{
							"type":        "string",
							"description": "Filter by a capability (partial match, e.g. 'thermal' or 'lidar')",
						},
						"status": map[string]interface{}{
							"type":        "string",
							"description": "Filter by exact status: Available, Deployed, or Maintenance",
						},
						"location": map[string]interface{}{
							"type":        "string",
							"description": "Filter by drone location (partial match)",
						},
						"weather_forecast": map[string]interface{}{
							"type":        "string",
							"description": "Only return drones whose weather resistance rating covers this forecast (e.g. 'rainy')",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "update_drone_status",
				Description: "Update a drone's status, optionally with a note. The change is written back to the fleet store.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"drone_id": map[string]interface{}{
							"type":        "string",
							"description": "The drone ID (e.g. D001)",
						},
						"new_status": map[string]interface{}{
							"type":        "string",
							"description": "New status: Available, Deployed, or Maintenance",
						},
						"note": map[string]interface{}{
							"type":        "string",
							"description": "Optional note explaining the change",
						},
					},
					"required": []string{"drone_id", "new_status"},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "get_missions",
				Description: "List missions, optionally filtered by location, priority, or a specific project ID. Returns requirements, dates, budget, and forecast for each mission.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"location": map[string]interface{}{
							"type":        "string",
							"description": "Filter by mission location (partial match)",
						},
						"priority": map[string]interface{}{
							"type":        "string",
							"description": "Filter by priority (partial match, e.g. 'Urgent')",
						},
						"project_id": map[string]interface{}{
							"type":        "string",
							"description": "Return only the mission with this project ID (e.g. PRJ001)",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "match_pilot_to_mission",
				Description: "Rank every pilot against a mission's requirements. Returns recommended pilots (no issues) and flagged pilots with the reasons they were flagged, each with a score and cost estimate.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "string",
							"description": "The mission's project ID (e.g. PRJ001)",
						},
					},
					"required": []string{"project_id"},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "match_drone_to_mission",
				Description: "Check every drone against a mission's weather, location, and maintenance constraints. Returns suitable drones and unsuitable drones with reasons.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "string",
							"description": "The mission's project ID (e.g. PRJ001)",
						},
					},
					"required": []string{"project_id"},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "detect_conflicts",
				Description: "Scan mission assignments for problems: skill or certification gaps, budget overruns, double-booked pilots, weather risks, maintenance issues, and location mismatches. Findings are ordered by severity.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "string",
							"description": "Limit the scan to one project ID; omit to scan every mission",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "urgent_reassignment",
				Description: "Handle a mission that suddenly lost its pilot or drone. Returns ranked replacement candidates plus the immediate follow-up actions to take.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"project_id": map[string]interface{}{
							"type":        "string",
							"description": "The affected mission's project ID",
						},
						"reason": map[string]interface{}{
							"type":        "string",
							"description": "Why the reassignment is needed (e.g. 'pilot called in sick')",
						},
						"resource_type": map[string]interface{}{
							"type":        "string",
							"description": "'pilot' (default) or 'drone'",
						},
					},
					"required": []string{"project_id"},
				},
			},
		},
		{
			Type: "function",
			Function: ToolFunction{
				Name:        "get_active_assignments",
				Description: "List every pilot and drone currently assigned to a mission, joined with the mission's details.",
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
					"required":   []string{},
				},
			},
		},
	}
}
