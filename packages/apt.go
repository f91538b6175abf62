package packages

type Apt struct {
}

func (Apt) ListPkgsHeader() string {
	return "Listing..."
}

func (Apt) PkgExec() string {
	return "apt"
}

func (Apt) PkgEnv() map[string]string {
	return map[string]string{
		"DEBIAN_FRONTEND": "noninteractive",
		"DEBIAN_PRIORITY": "critical",
	}
}

func (Apt) PkgNameSeparator() string {
	return "/"
}
