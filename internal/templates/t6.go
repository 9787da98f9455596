/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import "github.com/friendsincode/brandpage/internal/brand"

const t6CSS = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: 'Orbitron', monospace;
  background: linear-gradient(145deg, #1A0F08, #2C1810);
  color: white;
  min-height: 100vh;
  overflow-x: hidden;
}

.container {
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  justify-content: center;
  align-items: center;
  padding: 20px;
  max-width: 1200px;
  margin: 0 auto;
  position: relative;
}

.header {
  text-align: center;
  margin-bottom: 40px;
}

.main-title {
  font-size: 2.5rem;
  font-weight: 900;
  color: var(--brand-primary);
  text-shadow: 2px 2px 4px rgba(0, 0, 0, 0.8);
  margin-bottom: 20px;
  animation: pulse 2s infinite;
}

.subtitle {
  font-size: 1.2rem;
  color: white;
  margin-bottom: 20px;
}

.bonus-timer {
  background: linear-gradient(45deg, var(--brand-secondary), var(--brand-accent));
  color: white;
  padding: 10px 20px;
  border-radius: 25px;
  font-weight: bold;
  display: inline-block;
  box-shadow: 0 4px 15px rgba(255, 107, 53, 0.4);
  animation: pulse 2s infinite;
}

.slot-machine {
  background: linear-gradient(145deg, #1A0F08, #2C1810);
  border: 6px solid var(--brand-primary);
  border-radius: 25px;
  padding: 40px;
  box-shadow: 0 0 50px rgba(255, 215, 0, 0.6);
  margin-bottom: 40px;
}

.prize-display {
  display: flex;
  justify-content: center;
  gap: 30px;
  margin-bottom: 30px;
}

.prize-item {
  padding: 15px;
  border-radius: 15px;
  text-align: center;
  border: 3px solid;
  min-width: 100px;
  font-weight: bold;
}

.prize-item.green {
  background: #22c55e;
  border-color: #16a34a;
}

.prize-item.purple {
  background: #8b5cf6;
  border-color: #7c3aed;
}

.slot-game {
  background: rgba(0, 0, 0, 0.6);
  border-radius: 20px;
  padding: 30px;
}

.rollover-line {
  display: flex;
  gap: 20px;
  justify-content: center;
  margin-bottom: 15px;
  padding: 15px;
  background: linear-gradient(145deg, #0a0a0a, #1a1a1a);
  border: 3px solid var(--brand-primary);
  border-radius: 15px;
}

.rollover-symbol {
  width: 80px;
  height: 80px;
  background: linear-gradient(145deg, var(--brand-secondary), var(--brand-primary));
  border: 2px solid var(--brand-accent);
  border-radius: 12px;
  display: flex;
  align-items: center;
  justify-content: center;
  font-size: 2rem;
}

.spin-button {
  width: 100%;
  background: linear-gradient(45deg, var(--brand-secondary), var(--brand-accent));
  color: white;
  border: 3px solid var(--brand-primary);
  border-radius: 15px;
  padding: 20px;
  font-size: 1.5rem;
  font-weight: 900;
  cursor: pointer;
  margin-top: 20px;
  animation: pulse 2s infinite;
}

.spin-button:hover {
  transform: scale(1.05);
  opacity: 0.9;
}

.features {
  display: flex;
  gap: 30px;
  margin-bottom: 40px;
  flex-wrap: wrap;
  justify-content: center;
}

.feature-item {
  background: rgba(0, 0, 0, 0.7);
  border: 2px solid var(--brand-primary);
  border-radius: 15px;
  padding: 20px;
  text-align: center;
  min-width: 150px;
  color: var(--brand-primary);
  font-weight: bold;
}

.cta-section {
  text-align: center;
}

.cta-button {
  background: linear-gradient(45deg, var(--brand-primary), var(--brand-accent));
  color: #000;
  border: 3px solid var(--brand-primary);
  border-radius: 15px;
  padding: 20px 40px;
  font-size: 1.5rem;
  font-weight: 900;
  cursor: pointer;
  box-shadow: 0 0 30px rgba(255, 215, 0, 0.6);
  animation: pulse 2s infinite;
}

.cta-button:hover {
  transform: scale(1.05);
  opacity: 0.9;
}

.disclaimer {
  color: #888;
  font-size: 0.8rem;
  margin-top: 20px;
}

@keyframes pulse {
  0%, 100% { transform: scale(1); }
  50% { transform: scale(1.05); }
}

@keyframes spin {
  0% { transform: rotateY(0deg); }
  25% { transform: rotateY(90deg); }
  50% { transform: rotateY(180deg); }
  75% { transform: rotateY(270deg); }
  100% { transform: rotateY(360deg); }
}

@keyframes fadeIn {
  from { opacity: 0; transform: scale(0.8); }
  to { opacity: 1; transform: scale(1); }
}

.animate-fadeIn { animation: fadeIn 0.5s ease-out; }
.spinning { animation: spin 0.1s linear infinite; }

.modal {
  position: fixed;
  top: 0;
  left: 0;
  width: 100%;
  height: 100%;
  background: rgba(0, 0, 0, 0.8);
  display: none;
  align-items: center;
  justify-content: center;
  z-index: 1000;
}

.modal.show {
  display: flex;
}

.win-content {
  background: linear-gradient(135deg, var(--brand-primary), var(--brand-accent));
  padding: 40px;
  border-radius: 20px;
  text-align: center;
  box-shadow: 0 0 50px rgba(0, 0, 0, 0.5);
  max-width: 500px;
  margin: 20px;
}

.win-content h2 {
  font-size: 2.5rem;
  font-weight: 900;
  color: #000;
  margin-bottom: 20px;
}

.win-content p {
  font-size: 1.2rem;
  color: #000;
  margin-bottom: 10px;
}

.claim-btn {
  background: #22c55e;
  color: white;
  border: none;
  padding: 15px 30px;
  border-radius: 10px;
  font-size: 1.2rem;
  font-weight: bold;
  cursor: pointer;
  margin: 20px 0;
  width: 100%;
}

.claim-btn:hover {
  background: #16a34a;
  transform: scale(1.05);
}

.close-btn {
  background: none;
  border: none;
  color: rgba(0, 0, 0, 0.7);
  cursor: pointer;
  text-decoration: underline;
  font-size: 0.9rem;
}

.close-btn:hover {
  color: #000;
}

@media (max-width: 768px) {
  .main-title {
    font-size: 2rem;
  }

  .rollover-symbol {
    width: 60px;
    height: 60px;
    font-size: 1.5rem;
  }

  .features {
    gap: 15px;
  }

  .feature-item {
    min-width: 120px;
    padding: 15px;
  }

  .slot-machine {
    padding: 20px;
  }

  .rollover-line {
    gap: 10px;
    padding: 10px;
  }
}
`

const t6HTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} - {{.Headline}}</title>
{{if .FontHref}}<link href="{{.FontHref}}" rel="stylesheet">{{end}}
<style>{{.CSS}}</style>
</head>
<body>
<div class="container">
  <header class="header">
    {{if .LogoURL}}
    <div style="margin-bottom: 20px;">
      <img src="{{.LogoURL}}" alt="{{.BrandName}}" style="height: 60px; width: auto; max-width: 200px; object-fit: contain;" onerror="this.style.display='none';">
    </div>
    {{end}}
    <h1 class="main-title">&#127942; {{.Headline}} &#127942;</h1>
    <p class="subtitle">{{.Subheadline}}</p>
    <div class="bonus-timer">&#9200; Bonus expires: 5:55</div>
  </header>

  <div class="slot-machine">
    <div class="prize-display">
      <div class="prize-item green">&#127873;<br>WIN $5,000</div>
      <div class="prize-item purple">&#128142;<br>MIN $1,000</div>
    </div>

    <div class="slot-game">
      <div class="rollover-line">
        <div class="rollover-symbol" id="slot0">&#128142;</div>
        <div class="rollover-symbol" id="slot1">&#127920;</div>
        <div class="rollover-symbol" id="slot2">&#127826;</div>
      </div>
      <div class="rollover-line">
        <div class="rollover-symbol" id="slot3">&#127942;</div>
        <div class="rollover-symbol" id="slot4">&#128176;</div>
        <div class="rollover-symbol" id="slot5">&#11088;</div>
      </div>
      <div class="rollover-line">
        <div class="rollover-symbol" id="slot6">&#128142;</div>
        <div class="rollover-symbol" id="slot7">&#127920;</div>
        <div class="rollover-symbol" id="slot8">&#127826;</div>
      </div>
      <button class="spin-button" id="spinButton">ROLL TO WIN!</button>
    </div>
  </div>

  <div class="features">
    <div class="feature-item">&#128142;<br>Instant Payouts</div>
    <div class="feature-item">&#127873;<br>Welcome Bonus</div>
    <div class="feature-item">&#127942;<br>24/7 Support</div>
  </div>

  <div class="cta-section">
    <button class="cta-button" id="playNowBtn">&#127942; {{.CTA}} &#127942;</button>
    <p class="disclaimer">18+ only. Gamble Responsibly. Terms &amp; Conditions Apply.</p>
  </div>
</div>

<div id="winModal" class="modal">
  <div class="win-content">
    <h2>&#127881; CONGRATULATIONS! &#127881;</h2>
    <p>You won <span style="font-weight: bold; font-size: 1.5em; color: #22c55e;">$1,000</span>!</p>
    <p>&#127873; Plus 50 FREE SPINS!</p>
    <button class="claim-btn" id="claimBtn">CLAIM YOUR PRIZE NOW!</button>
    <button class="close-btn" id="closeModal">Close</button>
  </div>
</div>

<script>
var spinCount = 0;
var isSpinning = false;
var symbols = ['💎', '🎰', '🍒', '🏆', '💰', '⭐'];

function randomSymbol() {
  return symbols[Math.floor(Math.random() * symbols.length)];
}

function updateSlotSymbols() {
  for (var i = 0; i < 9; i++) {
    var slot = document.getElementById('slot' + i);
    if (slot) {
      if (spinCount >= 2) {
        slot.textContent = '🏆';
      } else {
        slot.textContent = randomSymbol();
      }
    }
  }
}

function showWinModal() {
  document.getElementById('winModal').classList.add('show');
}

document.getElementById('spinButton').addEventListener('click', function() {
  if (isSpinning) return;

  isSpinning = true;
  spinCount++;

  var button = this;
  button.textContent = 'SPINNING...';
  button.style.opacity = '0.5';
  button.style.cursor = 'not-allowed';

  var slotSymbols = document.querySelectorAll('.rollover-symbol');
  slotSymbols.forEach(function(symbol) {
    symbol.classList.add('spinning');
  });

  var spinInterval = setInterval(function() {
    for (var i = 0; i < 9; i++) {
      var slot = document.getElementById('slot' + i);
      if (slot) {
        slot.textContent = randomSymbol();
      }
    }
  }, 100);

  setTimeout(function() {
    clearInterval(spinInterval);

    slotSymbols.forEach(function(symbol) {
      symbol.classList.remove('spinning');
    });

    updateSlotSymbols();

    button.textContent = 'ROLL TO WIN!';
    button.style.opacity = '1';
    button.style.cursor = 'pointer';
    isSpinning = false;

    if (spinCount === 2) {
      setTimeout(showWinModal, 500);
    }
  }, 2000);
});

document.getElementById('closeModal').addEventListener('click', function() {
  document.getElementById('winModal').classList.remove('show');
});

var ctaUrl = "{{.CTAURL}}";

function openCta() {
  if (ctaUrl) {
    window.open(ctaUrl, '_blank');
  }
}

document.getElementById('claimBtn').addEventListener('click', openCta);
document.getElementById('playNowBtn').addEventListener('click', openCta);
</script>
</body>
</html>
`

func newT6() *Template {
	return &Template{
		ID:          "t6",
		Name:        "Casino Slots",
		Description: "Slot machine page with a 3x3 reel grid, forced win on the second spin, and a prize modal.",
		FontHref:    "https://fonts.googleapis.com/css2?family=Orbitron:wght@400;700;900&display=swap",
		Defaults: brand.Config{
			BrandName: "Casino Slots",
			Colors: brand.Colors{
				Primary:   "#FFD700",
				Secondary: "#FF6B35",
				Accent:    "#FF1744",
			},
			Copy: brand.Copy{
				Headline:    "WIN BIG WITH CASINO SLOTS!",
				Subheadline: "Join thousands of winners playing the hottest slots!",
				CTA:         "PLAY NOW & WIN BIG!",
			},
		},
		css: t6CSS,
		doc: parseDoc("t6", t6HTML),
	}
}
