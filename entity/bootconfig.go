package entity

// BootConfig describes the firmware config file mutation: a backup copy
// followed by an appended hardware configuration block. The append is
// unconditional, so repeat runs duplicate the block; the backup is the only
// recovery aid.
type BootConfig struct {
	Path         string `yaml:"path"`
	BackupSuffix string `yaml:"backup_suffix"`
	Block        string `yaml:"block"`
}

func (b BootConfig) BackupPath() string {
	return b.Path + b.BackupSuffix
}
