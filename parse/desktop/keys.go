package desktop

// StandardKey identifies a key defined by the Desktop Entry Specification.
type StandardKey uint8

const (
	KeyType StandardKey = iota
	KeyVersion
	KeyName
	KeyGenericName
	KeyNoDisplay
	KeyComment
	KeyIcon
	KeyHidden
	KeyOnlyShowIn
	KeyNotShowIn
	KeyDBusActivatable
	KeyTryExec
	KeyExec
	KeyPath
	KeyTerminal
	KeyActions
	KeyMimeType
	KeyCategories
	KeyImplements
	KeyKeywords
	KeyStartupNotify
	KeyStartupWMClass
	KeyURL
)

var standardKeyNames = [...]string{
	KeyType:            "Type",
	KeyVersion:         "Version",
	KeyName:            "Name",
	KeyGenericName:     "GenericName",
	KeyNoDisplay:       "NoDisplay",
	KeyComment:         "Comment",
	KeyIcon:            "Icon",
	KeyHidden:          "Hidden",
	KeyOnlyShowIn:      "OnlyShowIn",
	KeyNotShowIn:       "NotShowIn",
	KeyDBusActivatable: "DBusActivatable",
	KeyTryExec:         "TryExec",
	KeyExec:            "Exec",
	KeyPath:            "Path",
	KeyTerminal:        "Terminal",
	KeyActions:         "Actions",
	KeyMimeType:        "MimeType",
	KeyCategories:      "Categories",
	KeyImplements:      "Implements",
	KeyKeywords:        "Keywords",
	KeyStartupNotify:   "StartupNotify",
	KeyStartupWMClass:  "StartupWMClass",
	KeyURL:             "URL",
}

// String returns the key name as it is written in a file.
func (k StandardKey) String() string {
	if int(k) < len(standardKeyNames) {
		return standardKeyNames[k]
	}
	return ""
}

// ParseStandardKey maps a key name back to its StandardKey. Matching is case-sensitive.
func ParseStandardKey(name string) (StandardKey, bool) {
	for k, n := range standardKeyNames {
		if n == name {
			return StandardKey(k), true
		}
	}
	return 0, false
}
