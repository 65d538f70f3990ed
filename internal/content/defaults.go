package content

// Default returns the built-in portfolio.
func Default() *Portfolio {
	return &Portfolio{
		Profile: Profile{
			Name:    "VIRENDER",
			Title:   "Creative Developer",
			Tagline: "Crafting immersive digital experiences at the intersection of design and code.",
			About: `## About me

I build interactive products that feel alive: motion, depth and a little
surprise in every scroll.

- **Frontend:** React, TypeScript, Three.js, WebGL
- **Backend:** Node.js, Go, PostgreSQL
- **Design:** Figma, motion design, prototyping

When I'm not coding I'm sketching scenes, reading about shaders or
exploring new places with a camera.`,
			Email:    "hello@virender.dev",
			Location: "India",
			Links: []Link{
				{Label: "GitHub", URL: "https://github.com/virender"},
				{Label: "LinkedIn", URL: "https://linkedin.com/in/virender"},
			},
		},
		Projects: []Project{
			{
				ID:          1,
				Title:       "3D Interactive Website",
				Description: "A fully immersive 3D experience built with Three.js and React Three Fiber.",
				Tags:        []string{"Three.js", "React", "WebGL"},
				Image:       "https://images.unsplash.com/photo-1558655146-9f40138edfeb",
				Language:    "tsx",
				Snippet: `<Canvas camera={{ position: [0, 0, 5] }}>
  <Float speed={2} floatIntensity={1.5}>
    <mesh><torusKnotGeometry /></mesh>
  </Float>
</Canvas>`,
			},
			{
				ID:          2,
				Title:       "E-commerce Platform",
				Description: "A modern e-commerce solution with advanced filtering and payment integration.",
				Tags:        []string{"React", "Node.js", "Stripe"},
				Image:       "https://images.unsplash.com/photo-1661956602139-ec64991b8b16",
				Language:    "javascript",
				Snippet: `const session = await stripe.checkout.sessions.create({
  mode: "payment",
  line_items: cart.map(toLineItem),
});`,
			},
			{
				ID:          3,
				Title:       "AI Content Generator",
				Description: "An AI-powered application that generates custom content for various purposes.",
				Tags:        []string{"Machine Learning", "Python", "React"},
				Image:       "https://images.unsplash.com/photo-1677442135136-760c813028ec",
				Language:    "python",
				Snippet: `def generate(prompt: str) -> str:
    return model.complete(prompt, max_tokens=512)`,
			},
		},
	}
}
