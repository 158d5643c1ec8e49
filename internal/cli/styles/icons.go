package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconArrow   = "\uf061" // arrow right
	IconLock    = "\uf023" // lock
	IconBell    = "\uf0f3" // bell
	IconMic     = "\uf130" // microphone
	IconVideo   = "\uf03d" // video camera
	IconGlobe   = "\uf0ac" // globe

	// Purge / filesystem
	IconTrash    = "\uf1f8" // trash
	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconDesktop  = "\uf108" // desktop
	IconCache    = "\uf49e" // cache
	IconLogs     = "\uf0f6" // file-text

	// Checkboxes
	IconCheckboxEmpty   = "\uf096" // unchecked
	IconCheckboxChecked = "\uf046" // checked

	IconCursor = "\uf054" // chevron-right
)
