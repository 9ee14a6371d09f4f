// Package steam locates a local Steam for Linux installation and reads the
// collections record Steam's library keeps in its embedded browser storage.
package steam

const (
	// LibraryFoldersVDF lists the Steam library folders of an installation
	LibraryFoldersVDF = "config/libraryfolders.vdf"

	// UserDataDir holds one subdirectory per Steam account that has signed in
	UserDataDir = "userdata"

	// LocalStorageDir is where Steam's embedded browser keeps its Local Storage LevelDB
	LocalStorageDir = "config/htmlcache/Local Storage/leveldb"

	// LoopbackOrigin is the origin Steam's library UI is served from
	LoopbackOrigin = "https://steamloopback.host"

	// cloudStorageNamespaceFormat names the per-user cloud storage namespace key
	cloudStorageNamespaceFormat = "U%s-cloud-storage-namespace"
)

// candidateDirs are the known Steam for Linux install locations relative to $HOME.
// Order matters: the last valid candidate wins.
var candidateDirs = []string{
	".local/share/Steam",
	".steam/root",
	".steam/steam",
	".steam/debian-installation",
}

// markerFiles must all exist for an install directory to count as a real
// (non-empty) installation.
// TODO: the second marker should be config/config.vdf; switch once installs
// without a config.vdf are confirmed not to exist.
var markerFiles = []string{
	LibraryFoldersVDF,
	LibraryFoldersVDF,
}
