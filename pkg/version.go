package confide

// Version is the current confide release.
const Version = "0.3.0"
