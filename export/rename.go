package export

const (
	// HostStarName is the name hosts give the primary star.
	HostStarName = "Sun"
	// StarName is the name the primary star is exported as.
	StarName = "Kerbol"
)

func rootRenames() map[string]string {
	return map[string]string{HostStarName: StarName}
}

// rootName applies only to the root of a hierarchy.
func (x *Exporter) rootName(name string) string {
	if to, ok := x.renames[name]; ok {
		return to
	}
	return name
}
