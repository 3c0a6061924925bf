package imicapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Services lists the services offered.
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	return Get[[]Service](ctx, c, "/services")
}

// Service fetches one service by id.
func (c *Client) Service(ctx context.Context, id int) (Service, error) {
	return Get[Service](ctx, c, "/services/"+strconv.Itoa(id))
}

// WhyUs lists the "why choose us" points.
func (c *Client) WhyUs(ctx context.Context) ([]WhyUs, error) {
	return Get[[]WhyUs](ctx, c, "/whyus")
}

// WhyUsItem fetches one "why choose us" point.
func (c *Client) WhyUsItem(ctx context.Context, id int) (WhyUs, error) {
	return Get[WhyUs](ctx, c, "/whyus/"+strconv.Itoa(id))
}

// Clients lists the client companies.
func (c *Client) Clients(ctx context.Context) ([]Company, error) {
	return Get[[]Company](ctx, c, "/clients")
}

// ClientItem fetches one client company.
func (c *Client) ClientItem(ctx context.Context, id int) (Company, error) {
	return Get[Company](ctx, c, "/clients/"+strconv.Itoa(id))
}

// Projects lists every project with its category.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	return Get[[]Project](ctx, c, "/projects")
}

// Project fetches one project with its gallery and engineer.
func (c *Client) Project(ctx context.Context, id int) (Project, error) {
	return Get[Project](ctx, c, "/projects/"+strconv.Itoa(id))
}

// About returns the first entry of /aboutus.
func (c *Client) About(ctx context.Context) (About, error) {
	list, err := Get[[]About](ctx, c, "/aboutus")
	if err != nil {
		return About{}, err
	}
	if len(list) == 0 {
		return About{}, fmt.Errorf("%w: /aboutus is empty", ErrNotFound)
	}
	return list[0], nil
}

// Reviews lists the customer testimonials.
func (c *Client) Reviews(ctx context.Context) ([]Review, error) {
	return Get[[]Review](ctx, c, "/reviews")
}

// News lists the news articles.
func (c *Client) News(ctx context.Context) ([]News, error) {
	return Get[[]News](ctx, c, "/news")
}

// NewsItem fetches one news article.
func (c *Client) NewsItem(ctx context.Context, id int) (News, error) {
	return Get[News](ctx, c, "/news/"+strconv.Itoa(id))
}

// NewsBar fetches the announcement bar.
func (c *Client) NewsBar(ctx context.Context) (NewsBar, error) {
	return Get[NewsBar](ctx, c, "/bars")
}

// Engineer fetches an engineer with their projects.
func (c *Client) Engineer(ctx context.Context, id int) (Engineer, error) {
	return Get[Engineer](ctx, c, "/engineers/"+strconv.Itoa(id))
}

// SubmitContact posts the contact form.
func (c *Client) SubmitContact(ctx context.Context, s ContactSubmission) (SubmitResult, error) {
	return c.submit(ctx, "/contactus", s)
}

// BookAppointment posts a meeting request.
func (c *Client) BookAppointment(ctx context.Context, a AppointmentRequest) (SubmitResult, error) {
	return c.submit(ctx, "/appointments", a)
}

// submit accepts any data payload: the write endpoints answer with an
// object, a string or nothing depending on the route.
func (c *Client) submit(ctx context.Context, endpoint string, body any) (SubmitResult, error) {
	env, err := do[json.RawMessage](ctx, c, "POST", endpoint, body)
	if err != nil {
		return SubmitResult{}, err
	}

	res := SubmitResult{Message: env.Message}
	if res.Message == "" && len(env.Data) > 0 {
		var data SubmitResult
		if json.Unmarshal(env.Data, &data) == nil {
			res.Message = data.Message
		}
	}
	return res, nil
}
