package lock

// Path returns the lock file guarding the image at path.
func Path(path string) string {
	return path + ".lock"
}
