package joint

import "fmt"

// Labels holds the axis, title and legend text for a surface plot.
type Labels struct {
	Title    string `json:"title"`
	X        string `json:"x"`
	Y        string `json:"y"`
	Z        string `json:"z"`
	Colorbar string `json:"colorbar"`
}

// LabelsFor returns the plot text for s.
func LabelsFor(s *Surface) Labels {
	xn, yn := s.X.Family().String(), s.Y.Family().String()
	return Labels{
		Title:    fmt.Sprintf("Joint Distribution of %s and %s", xn, yn),
		X:        fmt.Sprintf("X: %s Distribution", xn),
		Y:        fmt.Sprintf("Y: %s Distribution", yn),
		Z:        "Joint Probability Density",
		Colorbar: fmt.Sprintf("%s Density", xn),
	}
}
