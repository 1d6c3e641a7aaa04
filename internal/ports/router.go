package ports

// Router switches the visible view to a logical path such as /app/home
type Router interface {
	Navigate(path string)
}
