package config

// Base application details
const AppName = "shift"
const ConfigDirName = "shift"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "shift.log"

// Drag behavior
const DefaultDragCount = 1
const SystemClipboard = false
