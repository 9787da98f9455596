/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package templates

import "github.com/friendsincode/brandpage/internal/brand"

const t7CSS = `* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: 'Inter', sans-serif;
  line-height: 1.6;
  color: #ffffff;
  background: radial-gradient(circle at top, #1e3a5f, #000000 75%);
  background-color: #000000;
  min-height: 100vh;
  overflow-x: hidden;
}

.logo-container {
  min-height: 5rem;
  display: flex;
  align-items: center;
  justify-content: center;
  margin-bottom: 1.5rem;
}

.logo-container img {
  height: 4rem;
  width: auto;
  max-width: 200px;
  object-fit: contain;
  filter: drop-shadow(0 4px 8px rgba(0, 0, 0, 0.5)) brightness(1.2) contrast(1.1);
}

.container {
  max-width: 1200px;
  margin: 0 auto;
  padding: 0 1rem;
}

.slot-machine {
  background: linear-gradient(to bottom, var(--brand-secondary), var(--brand-primary));
  border: 4px solid var(--brand-accent);
  border-radius: 1.5rem;
  padding: 1.5rem;
  box-shadow: 0 25px 50px -12px rgba(0, 0, 0, 0.25);
}

.slot-grid {
  display: grid;
  grid-template-columns: repeat(3, 1fr);
  gap: 0.5rem;
  background-color: #475569;
  padding: 1rem;
  border-radius: 0.75rem;
}

.slot-square {
  width: 5rem;
  height: 5rem;
  background: linear-gradient(to bottom, var(--brand-primary), var(--brand-accent));
  border-radius: 0.75rem;
  display: flex;
  align-items: center;
  justify-content: center;
  font-size: 1.875rem;
  box-shadow: 0 10px 15px -3px rgba(0, 0, 0, 0.1);
}

.game-controls {
  background: linear-gradient(to bottom, var(--brand-secondary), var(--brand-primary));
  border: 4px solid var(--brand-accent);
  border-radius: 1.5rem;
  padding: 1.5rem;
  box-shadow: 0 25px 50px -12px rgba(0, 0, 0, 0.25);
  min-width: 280px;
}

.control-display {
  background-color: rgba(71, 85, 105, 0.8);
  border: 2px solid #64748b;
  border-radius: 0.75rem;
  padding: 1rem;
  margin-bottom: 1rem;
  box-shadow: 0 10px 15px -3px rgba(0, 0, 0, 0.1);
}

.spin-button {
  width: 100%;
  background: linear-gradient(to right, var(--brand-primary), var(--brand-accent));
  color: white;
  font-weight: 900;
  font-size: 1.25rem;
  padding: 1rem;
  border-radius: 9999px;
  border: none;
  cursor: pointer;
  box-shadow: 0 25px 50px -12px rgba(0, 0, 0, 0.25);
  transition: all 0.2s;
}

.spin-button:hover {
  transform: scale(1.05);
  opacity: 0.9;
}

.disclaimer {
  background: linear-gradient(to right, rgba(31, 41, 55, 0.9), rgba(17, 24, 39, 0.9));
  backdrop-filter: blur(4px);
  border: 1px solid rgba(75, 85, 99, 0.5);
  border-radius: 0.5rem;
  padding: 0.75rem 1.5rem;
  box-shadow: 0 25px 50px -12px rgba(0, 0, 0, 0.25);
  display: inline-block;
  margin: 0 auto;
}

@keyframes pulse {
  0%, 100% { opacity: 1; }
  50% { opacity: 0.5; }
}

@keyframes spin {
  0% { transform: rotateY(0deg); }
  50% { transform: rotateY(180deg); }
  100% { transform: rotateY(360deg); }
}

.spinning {
  animation: spin 0.2s ease-in-out infinite;
}

.preload-square {
  width: 3rem;
  height: 3rem;
  background: linear-gradient(to bottom, #fb923c, #eab308);
  border-radius: 0.5rem;
  display: flex;
  align-items: center;
  justify-content: center;
  font-size: 1.25rem;
  animation: spin 0.5s linear infinite;
}
`

const t7HTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} - {{.Headline}}</title>
{{if .FontHref}}<link href="{{.FontHref}}" rel="stylesheet">{{end}}
<style>{{.CSS}}</style>
</head>
<body>
<div id="preloader" style="position: fixed; top: 0; left: 0; width: 100%; height: 100%; background: #000; z-index: 9999; display: flex; align-items: center; justify-content: center;">
  <div style="text-align: center;">
    <div style="margin-bottom: 2rem;">
      <div style="background: linear-gradient(to bottom, #475569, #334155); border-radius: 1.5rem; padding: 1rem; border: 3px solid #facc15; box-shadow: 0 25px 50px -12px rgba(0, 0, 0, 0.25); margin: 0 auto; width: fit-content;">
        <div style="display: grid; grid-template-columns: repeat(3, 1fr); gap: 0.25rem; background-color: #475569; padding: 0.5rem; border-radius: 0.5rem;">
          <div class="preload-square">&#127825;</div>
          <div class="preload-square" style="animation-delay: 0.1s;">&#128142;</div>
          <div class="preload-square" style="animation-delay: 0.2s;">&#128276;</div>
          <div class="preload-square" style="animation-delay: 0.05s;">&#11088;</div>
          <div class="preload-square" style="animation-delay: 0.15s;">&#127808;</div>
          <div class="preload-square" style="animation-delay: 0.25s;">&#127815;</div>
          <div class="preload-square" style="animation-delay: 0.3s;">&#128176;</div>
          <div class="preload-square" style="animation-delay: 0.2s;">&#127819;</div>
          <div class="preload-square" style="animation-delay: 0.1s;">&#127825;</div>
        </div>
      </div>
    </div>
    <h1 style="font-size: 2.5rem; font-weight: 900; color: #facc15; margin-bottom: 1rem; animation: pulse 2s infinite; text-shadow: 0 0 1px #ffd700, 0 0 2px #ffd700, 0 1px 0 rgba(0,0,0,0.3);">
      &#128142; {{upper .BrandName}} &#128142;
    </h1>
    <p style="color: #a5f3fc; font-size: 1.25rem; font-weight: bold; text-shadow: 0 0 1px #00bfff, 0 0 2px #00bfff, 0 1px 0 rgba(0,0,0,0.3);">Loading your casino experience...</p>
  </div>
</div>

<div style="min-height: 100vh; position: relative; overflow: hidden;">
  <div style="position: absolute; inset: 0;">
    <div style="position: absolute; top: 5rem; left: 5rem; width: 8rem; height: 8rem; background-color: rgba(250, 204, 21, 0.2); border-radius: 50%; animation: pulse 2s infinite;"></div>
    <div style="position: absolute; top: 10rem; right: 8rem; width: 6rem; height: 6rem; background-color: rgba(236, 72, 153, 0.2); border-radius: 50%; animation: pulse 2s infinite;"></div>
    <div style="position: absolute; bottom: 8rem; left: 10rem; width: 7rem; height: 7rem; background-color: rgba(59, 130, 246, 0.2); border-radius: 50%; animation: pulse 2s infinite;"></div>
    <div style="position: absolute; bottom: 5rem; right: 5rem; width: 5rem; height: 5rem; background-color: rgba(34, 197, 94, 0.2); border-radius: 50%; animation: pulse 2s infinite;"></div>
  </div>

  <div style="position: relative; z-index: 10; text-align: center; padding: 2rem 0;">
    <div class="logo-container"{{if not .LogoURL}} style="min-height: 1rem;"{{end}}>
      {{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.BrandName}}" onerror="this.style.display='none'; this.parentElement.style.minHeight='1rem';">{{end}}
    </div>
    <h1 style="font-size: 3rem; font-weight: 900; color: #facc15; margin-bottom: 1.5rem; text-shadow: 0 0 1px #ffd700, 0 0 2px #ffd700, 0 1px 0 rgba(0,0,0,0.3);">
      &#128142; {{upper .BrandName}} &#128142;
    </h1>
    <p style="font-size: 1.5rem; font-weight: bold; color: #a5f3fc; text-shadow: 0 0 1px #00bfff, 0 0 2px #00bfff, 0 1px 0 rgba(0,0,0,0.3);">
      &#11088; {{.Headline}} &#11088;
    </p>
  </div>

  <main style="position: relative; z-index: 10; padding: 0 1rem 2rem; display: flex; justify-content: center; gap: 2rem; max-width: 1200px; margin: 0 auto; flex-wrap: wrap;">
    <div class="slot-machine">
      <div style="text-align: center; margin-bottom: 1.5rem;">
        <h2 style="font-size: 1.5rem; font-weight: 900; color: #facc15; margin-bottom: 0.25rem;">{{upper .BrandName}}</h2>
        <h3 style="font-size: 1.25rem; font-weight: bold; color: #facc15;">SLOTS</h3>
      </div>

      <div class="slot-grid" id="slotGrid">
        <div class="slot-square" id="slot0">&#127825;</div>
        <div class="slot-square" id="slot1">&#128142;</div>
        <div class="slot-square" id="slot2">&#128276;</div>
        <div class="slot-square" id="slot3">&#11088;</div>
        <div class="slot-square" id="slot4">&#127808;</div>
        <div class="slot-square" id="slot5">&#127815;</div>
        <div class="slot-square" id="slot6">&#128176;</div>
        <div class="slot-square" id="slot7">&#127819;</div>
        <div class="slot-square" id="slot8">&#127825;</div>
      </div>
    </div>

    <div class="game-controls">
      <div style="text-align: center; margin-bottom: 1.5rem;">
        <h2 style="font-size: 1.5rem; font-weight: 900; color: #facc15;">GAME CONTROLS</h2>
      </div>

      <div class="control-display">
        <div style="color: #facc15; font-weight: bold; text-align: center; font-size: 1.125rem;">BET: $10</div>
      </div>

      <div class="control-display">
        <div id="balanceDisplay" style="color: #facc15; font-weight: bold; text-align: center; font-size: 1.125rem;">BALANCE: $1,000</div>
      </div>

      <button class="spin-button" id="spinButton">
        &#127920; {{.CTA}}
      </button>
    </div>
  </main>

  <div style="position: relative; z-index: 10; text-align: center; padding: 2rem 0;">
    <div class="disclaimer">
      <p style="color: #facc15; font-size: 0.875rem; font-weight: 600; letter-spacing: 0.025em; display: flex; align-items: center; justify-content: center; gap: 0.5rem;">
        <span style="color: #f87171; font-weight: 900;">18+</span>
        <span style="color: #d1d5db;">&#8226;</span>
        <span>Gamble Responsibly</span>
        <span style="color: #d1d5db;">&#8226;</span>
        <span>Terms Apply</span>
      </p>
    </div>
  </div>
</div>

<script>
var ctaUrl = "{{.CTAURL}}";

function SlotGame() {
  this.symbols = ['💎', '🍒', '🔔', '🍋', '⭐', '🍊', '🍇'];
  this.reels = [];
  this.balance = 1000;
  this.bet = 10;
  this.isSpinning = false;
  this.spinCount = 0;

  this.initializeReels();
  this.setupEventListeners();
  this.updateDisplay();
}

SlotGame.prototype.initializeReels = function() {
  for (var i = 0; i < 3; i++) {
    var reel = {
      slots: [
        document.getElementById('slot' + (i * 3)),
        document.getElementById('slot' + (i * 3 + 1)),
        document.getElementById('slot' + (i * 3 + 2))
      ]
    };
    this.reels.push(reel);
    this.randomizeReel(reel);
  }
};

SlotGame.prototype.randomizeReel = function(reel) {
  var symbols = this.symbols;
  reel.slots.forEach(function(slot) {
    slot.textContent = symbols[Math.floor(Math.random() * symbols.length)];
  });
};

SlotGame.prototype.setupEventListeners = function() {
  var game = this;
  document.getElementById('spinButton').addEventListener('click', function() {
    game.spin();
  });
};

SlotGame.prototype.spin = function() {
  if (this.isSpinning) return;

  if (this.balance < this.bet) {
    alert('Insufficient balance!');
    return;
  }

  this.isSpinning = true;
  this.balance -= this.bet;
  this.spinCount++;
  this.updateDisplay();

  var button = document.getElementById('spinButton');
  button.style.opacity = '0.7';
  button.style.transform = 'scale(0.95)';

  this.reels.forEach(function(reel) {
    reel.slots.forEach(function(slot) {
      slot.classList.add('spinning');
    });
  });

  var game = this;
  setTimeout(function() {
    game.stopSpin();
  }, 1200);
};

SlotGame.prototype.stopSpin = function() {
  var game = this;
  this.reels.forEach(function(reel, index) {
    setTimeout(function() {
      reel.slots.forEach(function(slot) {
        slot.classList.remove('spinning');
      });

      game.randomizeReel(reel);

      if (index === game.reels.length - 1) {
        setTimeout(function() {
          game.isSpinning = false;
          var button = document.getElementById('spinButton');
          button.style.opacity = '1';
          button.style.transform = 'scale(1)';

          if (game.spinCount === 2) {
            game.forceWinWithDelay();
          } else {
            game.checkWin();
          }
        }, 150);
      }
    }, index * 200);
  });
};

SlotGame.prototype.checkWin = function() {
  var slots = [];
  for (var i = 0; i < 9; i++) {
    slots.push(document.getElementById('slot' + i).textContent);
  }

  var winPatterns = [
    [0, 1, 2], [3, 4, 5], [6, 7, 8],
    [0, 3, 6], [1, 4, 7], [2, 5, 8],
    [0, 4, 8], [2, 4, 6]
  ];

  var hasWin = false;
  winPatterns.forEach(function(pattern) {
    if (slots[pattern[0]] === slots[pattern[1]] && slots[pattern[1]] === slots[pattern[2]]) {
      hasWin = true;
      pattern.forEach(function(index) {
        var el = document.getElementById('slot' + index);
        el.style.background = 'linear-gradient(to bottom, #fbbf24, #f59e0b)';
        el.style.transform = 'scale(1.1)';
      });
    }
  });

  if (hasWin) {
    this.balance += this.getWinAmount(slots[0]);
    this.updateDisplay();

    var game = this;
    setTimeout(function() {
      game.showBonusModal();
      for (var i = 0; i < 9; i++) {
        var slot = document.getElementById('slot' + i);
        slot.style.background = 'linear-gradient(to bottom, #fb923c, #eab308)';
        slot.style.transform = 'scale(1)';
      }
    }, 1200);
  }
};

SlotGame.prototype.forceWinWithDelay = function() {
  for (var i = 0; i < 9; i++) {
    var slot = document.getElementById('slot' + i);
    slot.textContent = '💎';
    slot.style.background = 'linear-gradient(to bottom, #fbbf24, #f59e0b)';
    slot.style.transform = 'scale(1.1)';
    slot.style.boxShadow = '0 0 30px rgba(255, 215, 0, 1)';
  }

  this.balance += 10000;
  this.updateDisplay();

  var game = this;
  setTimeout(function() {
    game.showBonusModal();
    for (var i = 0; i < 9; i++) {
      var slot = document.getElementById('slot' + i);
      slot.style.background = 'linear-gradient(to bottom, #fb923c, #eab308)';
      slot.style.transform = 'scale(1)';
      slot.style.boxShadow = 'none';
    }
  }, 1200);
};

SlotGame.prototype.getWinAmount = function(symbol) {
  var payouts = {
    '💎': 10000,
    '🔔': 5000,
    '⭐': 3000,
    '🍒': 2000,
    '🍋': 1500,
    '🍊': 1000,
    '🍇': 500
  };
  return payouts[symbol] || 0;
};

SlotGame.prototype.updateDisplay = function() {
  var balanceEl = document.getElementById('balanceDisplay');
  if (balanceEl) {
    balanceEl.textContent = 'BALANCE: $' + this.balance.toLocaleString();
  }
};

SlotGame.prototype.showBonusModal = function() {
  var modal = document.createElement('div');
  modal.style.cssText = 'position: fixed; top: 0; left: 0; width: 100%; height: 100%; background: rgba(0,0,0,0.8); display: flex; align-items: center; justify-content: center; z-index: 10000;';

  var content = document.createElement('div');
  content.style.cssText = 'position: relative; background: linear-gradient(135deg, #1e3a5f, #2c5282, #3182ce); padding: 50px; border-radius: 25px; text-align: center; border: 4px solid #FFD700; box-shadow: 0 0 80px rgba(255, 215, 0, 0.6); max-width: 600px; width: 90%;';

  var title = document.createElement('h2');
  title.style.cssText = 'font-size: 2.5rem; margin-bottom: 20px; color: #FFD700;';
  title.textContent = '🎉 JACKPOT!';
  content.appendChild(title);

  var body = document.createElement('p');
  body.style.cssText = 'font-size: 1.2rem; margin-bottom: 30px; color: white;';
  body.textContent = 'JACKPOT BONUS UNLOCKED! You have unlocked your $1000 Welcome Bonus + 100 Free Spins. Claim your bonus now and keep winning!';
  content.appendChild(body);

  var claim = document.createElement('a');
  claim.style.cssText = 'background: linear-gradient(135deg, #00ff88 0%, #32cd32 50%, #228b22 100%); color: #000; font-size: 1.6rem; font-weight: 800; padding: 20px 50px; border: 3px solid #fff; border-radius: 60px; text-decoration: none; display: inline-block; text-transform: uppercase; letter-spacing: 2px; box-shadow: 0 15px 40px rgba(0, 255, 136, 0.4); cursor: pointer;';
  claim.textContent = '🎁 CLAIM $1000 BONUS NOW!';
  if (ctaUrl) {
    claim.href = ctaUrl;
    claim.target = '_blank';
  }
  content.appendChild(claim);

  var close = document.createElement('div');
  close.style.cssText = 'position: absolute; top: 15px; right: 25px; color: #aaa; font-size: 28px; font-weight: bold; cursor: pointer;';
  close.innerHTML = '&times;';
  close.addEventListener('click', function() {
    modal.remove();
  });
  content.appendChild(close);

  modal.appendChild(content);
  document.body.appendChild(modal);

  modal.addEventListener('click', function(e) {
    if (e.target === modal) {
      modal.remove();
    }
  });
};

setTimeout(function() {
  var preloader = document.getElementById('preloader');
  if (preloader) {
    preloader.style.opacity = '0';
    preloader.style.transition = 'opacity 0.3s ease-out';
    setTimeout(function() {
      preloader.style.display = 'none';
    }, 300);
  }
}, 1500);

document.addEventListener('DOMContentLoaded', function() {
  new SlotGame();
});

window.addEventListener('load', function() {
  setTimeout(function() {
    for (var i = 0; i < 9; i++) {
      var slot = document.getElementById('slot' + i);
      if (slot) {
        slot.style.animation = 'pulse 2s infinite';
        slot.style.animationDelay = (i * 0.1) + 's';
      }
    }
  }, 3000);
});
</script>
</body>
</html>
`

func newT7() *Template {
	return &Template{
		ID:          "t7",
		Name:        "Casino Bonanza",
		Description: "Premium 3x3 slot machine with a preloader, staggered reel stops, and a jackpot modal.",
		FontHref:    "https://fonts.googleapis.com/css2?family=Inter:wght@400;700;900&display=swap",
		Defaults: brand.Config{
			BrandName: "Bonanza Casino",
			Colors: brand.Colors{
				Primary:   "#FFD700",
				Secondary: "#FF6B35",
				Accent:    "#FF1744",
			},
			Copy: brand.Copy{
				Headline:    "WIN BIG WITH BONANZA BILLION SLOTS!",
				Subheadline: "Premium 3x3 slot machine with life-changing prizes",
				CTA:         "SPIN TO WIN",
			},
		},
		css: t7CSS,
		doc: parseDoc("t7", t7HTML),
	}
}
