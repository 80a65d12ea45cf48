package suggest

import (
	"fmt"
	"strings"

	"roomplanner/layout"
	"roomplanner/models"
)

// BuildLayoutPrompt describes the room, the catalog and the expected JSON reply.
func BuildLayoutPrompt(room models.RoomSpec, items []models.FurnitureItem) string {
	var b strings.Builder
	clearance := layout.WallClearance

	b.WriteString("You are an expert interior designer. Your task is to create an optimal furniture layout for a room.\n\n")

	b.WriteString("ROOM SPECIFICATIONS:\n")
	fmt.Fprintf(&b, "- Dimensions: %.1f meters (length) x %.1f meters (width)\n", room.Length, room.Width)
	fmt.Fprintf(&b, "- Budget: $%d\n", room.Budget)
	fmt.Fprintf(&b, "- Wall clearance required: %.1f meters from all walls\n", clearance)
	fmt.Fprintf(&b, "- Usable space: %.1f meters x %.1f meters (accounting for wall clearance)\n\n",
		room.Length-2*clearance, room.Width-2*clearance)

	b.WriteString("AVAILABLE FURNITURE OPTIONS:\n")
	for _, f := range items {
		fmt.Fprintf(&b, "- %s (Category: %s)\n", f.Name, f.Category)
		fmt.Fprintf(&b, "  Dimensions: %.2f m (width) x %.2f m (depth)\n", f.Width, f.Depth)
		fmt.Fprintf(&b, "  Price: $%d\n", f.Price)
	}
	b.WriteString("\n")

	b.WriteString("INTERIOR DESIGN PRINCIPLES TO FOLLOW:\n")
	b.WriteString("1. Create conversation areas and focal points\n")
	b.WriteString("2. Ensure proper traffic flow (minimum 1 meter pathways)\n")
	b.WriteString("3. Place larger furniture (sofas, beds) against walls when possible\n")
	b.WriteString("4. Consider natural light and room function\n")
	b.WriteString("5. Balance the room visually\n")
	b.WriteString("6. Stay within budget constraint\n")
	fmt.Fprintf(&b, "7. Maintain minimum %.1f meters clearance from walls\n\n", clearance)

	b.WriteString("COORDINATE SYSTEM:\n")
	b.WriteString("- Origin (0, 0) is at the bottom-left corner of the room\n")
	fmt.Fprintf(&b, "- X-axis runs along the length (0 to %g meters)\n", room.Length)
	fmt.Fprintf(&b, "- Y-axis runs along the width (0 to %g meters)\n", room.Width)
	b.WriteString("- Coordinates (x, y) represent the CENTER of each furniture piece\n")
	b.WriteString("- All furniture must fit within the room boundaries with proper clearance\n\n")

	b.WriteString("REQUIRED OUTPUT FORMAT (JSON only, no additional text):\n")
	b.WriteString(outputFormat)
	b.WriteString("\n")

	b.WriteString("IMPORTANT:\n")
	b.WriteString("- Only use furniture names EXACTLY as listed above\n")
	fmt.Fprintf(&b, "- Do NOT exceed the budget of $%d\n", room.Budget)
	b.WriteString("- Ensure all coordinates are within room bounds with clearance\n")
	b.WriteString("- Provide ONLY the JSON response, no additional commentary\n")
	b.WriteString("- Select 3-7 pieces of furniture for a balanced room\n")

	return b.String()
}

const outputFormat = `{
  "suggestedFurniture": [
    {
      "name": "Exact furniture name from the available list",
      "x": <x-coordinate in meters>,
      "y": <y-coordinate in meters>,
      "reasoning": "Brief explanation for this placement"
    }
  ],
  "totalEstimatedCost": <total cost of selected furniture>,
  "reasoning": "Overall design strategy and layout explanation"
}
`

// BuildSimplifiedPrompt is a one-line variant for models that struggle with
// the long prompt.
func BuildSimplifiedPrompt(room models.RoomSpec, items []models.FurnitureItem) string {
	names := make([]string, len(items))
	for i, f := range items {
		names[i] = f.Name
	}
	available := strings.Join(names, ", ")
	if available == "" {
		available = "none"
	}
	return fmt.Sprintf("Create a furniture layout for a %.1fm x %.1fm room with a $%d budget. "+
		"Available furniture: %s. "+
		"Return JSON with suggestedFurniture array containing name, x, y coordinates, and reasoning.",
		room.Length, room.Width, room.Budget, available)
}
