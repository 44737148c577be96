package public

// greeting is the response of the original backend's hello endpoint.
const greeting = "Hello World!"

type service struct{}

func newService() service {
	return service{}
}

func (service) greeting() string {
	return greeting
}

func (service) healthBody() string {
	return "ok"
}
