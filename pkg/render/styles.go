package render

// pageStyles returns the inline stylesheet for the generated page.
func pageStyles() string {
	return `<style>
* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
    background: linear-gradient(180deg, #1a0a2e 0%, #16213e 15%, #1a3a1a 40%, #0d260d 70%, #051005 100%);
    background-attachment: fixed;
    min-height: 100vh;
    color: #333;
    overflow-x: hidden;
}

.container {
    max-width: 1200px;
    margin: 0 auto;
    padding: 20px;
}

header {
    text-align: center;
    padding: 30px 20px 40px;
    color: white;
}

.logo-text {
    font-family: 'Fredoka', sans-serif;
    font-size: 3.5rem;
    font-weight: 700;
    background: linear-gradient(135deg, #90EE90 0%, #FFD700 50%, #FFA500 100%);
    -webkit-background-clip: text;
    -webkit-text-fill-color: transparent;
    background-clip: text;
    filter: drop-shadow(3px 3px 6px rgba(0,0,0,0.4));
    margin-bottom: 8px;
}

header .tagline {
    font-family: 'Fredoka', sans-serif;
    font-size: 1.3rem;
    color: #98FB98;
    font-weight: 500;
    margin-bottom: 20px;
}

.valid-dates {
    background: linear-gradient(135deg, #FFD700 0%, #FFA500 100%);
    color: #1a3d15;
    padding: 12px 24px;
    border-radius: 50px;
    display: inline-block;
    font-weight: 600;
    font-family: 'Fredoka', sans-serif;
    box-shadow: 0 4px 15px rgba(255, 215, 0, 0.3);
}

nav {
    background: rgba(255, 255, 255, 0.95);
    backdrop-filter: blur(10px);
    border-radius: 20px;
    padding: 15px;
    margin-bottom: 30px;
    box-shadow: 0 8px 32px rgba(0,0,0,0.2);
    position: sticky;
    top: 10px;
    z-index: 100;
}

nav ul {
    list-style: none;
    display: flex;
    flex-wrap: wrap;
    justify-content: center;
    gap: 10px;
}

nav a {
    display: block;
    padding: 12px 24px;
    background: linear-gradient(135deg, #2d5a27 0%, #1a3d15 100%);
    color: white;
    text-decoration: none;
    border-radius: 50px;
    font-weight: 600;
    font-family: 'Fredoka', sans-serif;
    transition: all 0.3s ease;
}

nav a:hover {
    transform: translateY(-3px) scale(1.05);
    box-shadow: 0 6px 20px rgba(45, 90, 39, 0.4);
}

section {
    background: rgba(255, 255, 255, 0.95);
    border-radius: 24px;
    padding: 30px;
    margin-bottom: 30px;
    box-shadow: 0 8px 32px rgba(0,0,0,0.15);
}

section h2 {
    font-family: 'Fredoka', sans-serif;
    color: #1a3d15;
    font-size: 2rem;
    margin-bottom: 25px;
    padding-bottom: 15px;
    border-bottom: 4px solid;
    border-image: linear-gradient(90deg, #2d5a27, #FFD700) 1;
}

.stack-deal {
    background: linear-gradient(135deg, #f0fff0 0%, #e8f5e9 100%);
    border-radius: 16px;
    padding: 24px;
    margin-bottom: 20px;
    border-left: 6px solid #2d5a27;
    transition: transform 0.3s ease;
}

.stack-deal:hover {
    transform: translateX(5px);
}

.stack-deal h4 {
    font-family: 'Fredoka', sans-serif;
    color: #1a3d15;
    font-size: 1.3rem;
    margin-bottom: 18px;
}

.stack-deal .sale-items,
.stack-deal .coupons,
.stack-deal .buy-list,
.stack-deal .why-works {
    margin-bottom: 15px;
}

.stack-deal strong {
    color: #2d5a27;
    display: block;
    margin-bottom: 8px;
    font-weight: 600;
}

.stack-deal ul {
    list-style: none;
    padding-left: 0;
}

.stack-deal li {
    padding: 8px 0 8px 28px;
    position: relative;
}

.stack-deal li:before {
    content: "\2713";
    position: absolute;
    left: 0;
    color: #2d5a27;
}

.why-works {
    background: linear-gradient(135deg, #fff9e6 0%, #fff3cd 100%);
    padding: 16px 20px;
    border-radius: 12px;
    border-left: 4px solid #FFD700;
}

.why-works strong {
    color: #856404 !important;
}

.bogo-grid, .coupon-grid {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(320px, 1fr));
    gap: 20px;
}

.deal-card {
    background: linear-gradient(145deg, #ffffff 0%, #f8f9fa 100%);
    border-radius: 16px;
    padding: 20px;
    transition: all 0.3s ease;
    border: 2px solid #e9ecef;
}

.deal-card:hover {
    transform: translateY(-5px);
    box-shadow: 0 12px 24px rgba(0,0,0,0.15);
    border-color: #2d5a27;
}

.deal-card h5 {
    font-family: 'Fredoka', sans-serif;
    color: #1a3d15;
    font-size: 1.1rem;
    margin-bottom: 12px;
}

.deal-card .offer {
    background: linear-gradient(135deg, #ff6b35 0%, #f7931e 100%);
    color: white;
    padding: 6px 14px;
    border-radius: 50px;
    font-size: 0.85rem;
    font-weight: 600;
    display: inline-block;
    margin-bottom: 10px;
}

.deal-card .savings {
    color: #2d5a27;
    font-weight: 700;
    font-size: 1rem;
}

.deal-card .valid {
    color: #6c757d;
    font-size: 0.85rem;
    margin-top: 8px;
}

.coupon-card {
    background: linear-gradient(145deg, #fffef5 0%, #fff9e6 100%);
    border: 2px dashed #2d5a27;
}

.coupon-card .savings-amount {
    background: linear-gradient(135deg, #2d5a27 0%, #1a3d15 100%);
    color: white;
    padding: 6px 14px;
    border-radius: 50px;
    font-size: 0.85rem;
    font-weight: 600;
    display: inline-block;
    margin-bottom: 10px;
}

.coupon-card .description {
    color: #555;
    font-size: 0.9rem;
    margin-top: 8px;
    line-height: 1.5;
}

.coupon-card .expires {
    color: #dc3545;
    font-size: 0.85rem;
    margin-top: 8px;
    font-weight: 600;
}

.category-header {
    background: linear-gradient(135deg, #2d5a27 0%, #1a3d15 100%);
    padding: 14px 24px;
    border-radius: 12px;
    margin: 30px 0 20px 0;
    font-weight: 600;
    color: white;
    font-family: 'Fredoka', sans-serif;
    font-size: 1.1rem;
}

footer {
    text-align: center;
    padding: 40px 20px;
    color: #98FB98;
}

footer p {
    margin-bottom: 8px;
}

.footer-domain {
    margin-top: 15px;
    font-size: 0.85rem;
    opacity: 0.7;
}

@media (max-width: 768px) {
    .logo-text {
        font-size: 2.5rem;
    }

    nav ul {
        flex-direction: column;
        align-items: center;
    }

    .bogo-grid, .coupon-grid {
        grid-template-columns: 1fr;
    }

    section {
        padding: 20px;
        border-radius: 16px;
    }
}
</style>
`
}
