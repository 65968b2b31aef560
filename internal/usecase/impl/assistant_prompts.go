package impl

import "fmt"

const (
	pricingSystemPrompt   = "You are a pricing expert for handmade artisan products. Provide realistic pricing suggestions based on materials, craftsmanship, and market positioning."
	marketingSystemPrompt = "You are a marketing copywriter specializing in handmade artisan products. Create compelling, authentic content that resonates with buyers of handcrafted goods."
	storySystemPrompt     = "You are a storytelling expert who helps artisans tell their craft stories in compelling ways that connect with customers while maintaining authenticity."
	jsonOnlySuffix        = "\n\nPlease respond with valid JSON only, no additional text."
)

func pricingPrompt(title, description, category, materials string) string {
	return fmt.Sprintf(`Analyze this handmade artisan product and suggest pricing:

Product: %s
Description: %s
Category: %s
Materials: %s

Consider factors like:
- Materials cost and quality
- Time investment for handmade items
- Market positioning for artisan goods
- Category-specific pricing trends
- Value perception for handcrafted items

Provide a JSON response with:
{
  "suggestedPrice": number,
  "priceRange": {"min": number, "max": number},
  "reasoning": "explanation of pricing rationale",
  "marketFactors": ["factor1", "factor2", "factor3"]
}`, title, description, category, materials) + jsonOnlySuffix
}

func marketingPrompt(title, description, category, artisanName string) string {
	return fmt.Sprintf(`Create marketing content for this artisan product:

Product: %s
Description: %s
Category: %s
Artisan: %s

Generate compelling marketing content that highlights:
- Handmade craftsmanship value
- Unique artisan story elements
- SEO-friendly keywords
- Emotional connection points
- Social media appeal

Provide JSON response with:
{
  "seoTitle": "SEO-optimized title with relevant keywords",
  "socialCaption": "Instagram-ready caption with hashtags",
  "storyVersion": "Emotional storytelling version emphasizing craft",
  "marketingDescription": "Compelling product description for listings"
}`, title, description, category, artisanName) + jsonOnlySuffix
}

func storyPrompt(bio, craftType, location, experience string) string {
	return fmt.Sprintf(`Enhance this artisan's story and profile:

Current Bio: %s
Craft Type: %s
Location: %s
Experience: %s

Create an enhanced artisan story that:
- Maintains authenticity while improving storytelling
- Highlights unique aspects of their craft journey
- Creates emotional connection with potential buyers
- Emphasizes artisan expertise and passion
- Includes inspiration sources and creative process

Provide JSON response with:
{
  "enhancedBio": "Improved version of the bio with better storytelling",
  "craftStory": "Detailed story about their craft journey and techniques",
  "inspirationSources": ["source1", "source2", "source3"],
  "uniqueSellingPoints": ["point1", "point2", "point3"]
}`, bio, craftType, location, experience) + jsonOnlySuffix
}

const imageAnalysisPrompt = `Analyze this artisan product image and provide insights for the seller. Focus on:
- Materials and craftsmanship visible in the image
- Style and aesthetic analysis
- Photography and presentation suggestions
- Marketing and listing improvement tips

Respond in JSON format with:
{
  "suggestions": ["suggestion1", "suggestion2"],
  "detectedMaterials": ["material1", "material2"],
  "styleAnalysis": "description of style and aesthetic",
  "improvementTips": ["tip1", "tip2", "tip3"]
}` + jsonOnlySuffix
